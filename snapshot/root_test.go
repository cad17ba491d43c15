// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/snapshot"
)

const (
	dir      = "testing"
	category = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func TestInitialVersion(t *testing.T) {
	r := snapshot.New(logger.New(category), time.Minute)

	v := r.Load()
	assert.Equal(t, uint64(0), v.Number, "number")
	assert.True(t, avl.IsEmpty(v.Tree), "tree not empty")

	tree, ok := r.At(0)
	assert.True(t, ok, "version zero not retained")
	assert.True(t, avl.IsEmpty(tree), "version zero not empty")
}

func TestInsertDelete(t *testing.T) {
	r := snapshot.New(logger.New(category), time.Minute)

	for i, k := range []int{5, 3, 8} {
		v, err := r.Insert(k)
		require.NoError(t, err, "insert %d", k)
		assert.Equal(t, uint64(i+1), v.Number, "insert %d number", k)
	}
	assert.True(t, r.Find(3), "find")

	v, err := r.Delete(3)
	require.NoError(t, err, "delete")
	assert.Equal(t, uint64(4), v.Number, "delete number")
	assert.False(t, r.Find(3), "deleted key found")

	// earlier versions are unchanged
	old, ok := r.At(3)
	require.True(t, ok, "version 3 not retained")
	assert.True(t, avl.Find(old, 3), "version 3 lost key")
	assert.Equal(t, 3, avl.Size(old), "version 3 size")
}

func TestNothingToPublish(t *testing.T) {
	r := snapshot.New(logger.New(category), time.Minute)

	_, err := r.Insert(1)
	require.NoError(t, err, "insert")

	v, err := r.Insert(1)
	require.NoError(t, err, "duplicate")
	assert.Equal(t, uint64(1), v.Number, "duplicate published")

	v, err = r.Delete(99)
	assert.Equal(t, fault.ErrEmptyTreeAccess, err, "delete absent")
	assert.Equal(t, uint64(1), v.Number, "failed delete published")
	assert.Equal(t, uint64(1), r.Load().Number, "current moved")
}

func TestConcurrentWriters(t *testing.T) {
	const (
		writers = 8
		each    = 200
	)

	r := snapshot.New(logger.New(category), time.Minute)

	var wg sync.WaitGroup
	errs := make(chan error, writers*each)
	for w := 0; w < writers; w += 1 {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < each; i += 1 {
				if _, err := r.Insert(base*each + i); nil != err {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("insert error: %s", err)
	}

	v := r.Load()
	assert.Equal(t, uint64(writers*each), v.Number, "version number")
	assert.Equal(t, writers*each, avl.Size(v.Tree), "size")
	assert.NoError(t, avl.Check(v.Tree), "check")
	t.Logf("conflicts: %d", r.Conflicts())
}

// a transform that always loses the race must give up
func TestRetryLimit(t *testing.T) {
	r := snapshot.New(logger.New(category), time.Minute)

	calls := 0
	_, err := r.Update(func(tree avl.Tree) (avl.Tree, error) {
		calls += 1
		if _, err := r.Insert(1000 + calls); nil != err {
			return tree, err
		}
		return avl.Insert(tree, -calls), nil
	})

	assert.Equal(t, fault.ErrRetryLimit, err, "error")
	assert.Equal(t, snapshot.MaximumRetries, calls, "attempts")
	assert.Equal(t, uint64(snapshot.MaximumRetries), r.Conflicts(), "conflicts")
	assert.False(t, r.Find(-1), "abandoned update published")
}

func TestHistoryExpires(t *testing.T) {
	r := snapshot.New(logger.New(category), 50*time.Millisecond)

	_, err := r.Insert(1)
	require.NoError(t, err)

	_, ok := r.At(1)
	assert.True(t, ok, "version 1 not retained")

	time.Sleep(150 * time.Millisecond)

	_, ok = r.At(1)
	assert.False(t, ok, "version 1 not expired")
	assert.True(t, r.Find(1), "current version lost")
}
