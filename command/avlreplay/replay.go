// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/journal"
	"github.com/bitmark-inc/avltree/snapshot"
	"github.com/bitmark-inc/avltree/traversal"
)

const (
	replayLoggerPrefix = "journal"
)

// replayer - rebuild the tree from the journal
type replayer struct {
	log      *logger.L
	root     *snapshot.Root
	fileName string
	check    bool
	limiter  *rate.Limiter
	change   <-chan struct{}
	out      io.Writer
}

func newReplayer(conf *Configuration, root *snapshot.Root, change <-chan struct{}, out io.Writer) *replayer {
	return &replayer{
		log:      logger.New(replayLoggerPrefix),
		root:     root,
		fileName: conf.Journal,
		check:    conf.Check,
		limiter:  rate.NewLimiter(rate.Every(conf.reloadInterval), 1),
		change:   change,
		out:      out,
	}
}

// Run - background process
func (r *replayer) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.change:
			if !r.wait(shutdown) {
				break loop
			}
			if err := r.replay(); nil != err {
				r.log.Errorf("replay: %s  error: %s", r.fileName, err)
			}
		}
	}
	r.log.Info("stopped")
}

// delay until the limiter allows another replay
//
// false if shutdown happened first
func (r *replayer) wait(shutdown <-chan struct{}) bool {
	reservation := r.limiter.Reserve()
	if !reservation.OK() {
		return true
	}
	delay := reservation.Delay()
	if delay <= 0 {
		return true
	}
	r.log.Debugf("replay delayed: %s", delay)

	select {
	case <-shutdown:
		reservation.Cancel()
		return false
	case <-time.After(delay):
		return true
	}
}

// read the journal and apply it to an empty tree
func (r *replayer) replay() error {
	ops, err := journal.ReadFile(r.fileName)
	if nil != err {
		return err
	}

	previous := r.root.Load()
	_, err = r.root.Update(func(avl.Tree) (avl.Tree, error) {
		return avl.Empty(), nil
	})
	if nil != err {
		return err
	}

	summary, err := journal.Apply(r.root, ops, r.log)
	if nil != err {
		return err
	}
	r.log.Infof("summary: %+v", summary)

	current := r.root.Load()
	r.log.Infof("replaced version: %d  size: %d  with version: %d", previous.Number, avl.Size(previous.Tree), current.Number)

	if r.check {
		if err := avl.Check(current.Tree); nil != err {
			r.log.Criticalf("tree check failed: %s", err)
			return err
		}
	}

	return r.print(current)
}

func (r *replayer) print(v snapshot.Version) error {
	inOrder, err := traversal.Collect(traversal.InOrder(v.Tree))
	if nil != err {
		return err
	}
	breadthFirst, err := traversal.Collect(traversal.BreadthFirst(v.Tree))
	if nil != err {
		return err
	}

	fmt.Fprintf(r.out, "in-order: %s\n", joinKeys(inOrder))
	fmt.Fprintf(r.out, "breadth-first: %s\n", joinKeys(breadthFirst))
	fmt.Fprintf(r.out, "version: %d  height: %d  size: %d\n", v.Number, avl.Height(v.Tree), len(inOrder))
	return nil
}

func joinKeys(keys []int) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = strconv.Itoa(k)
	}
	return strings.Join(s, " ")
}
