// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package journal

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/snapshot"
)

// Summary - counts of the outcomes of applied operations
type Summary struct {
	Inserted   int
	Duplicates int
	Deleted    int
	Missing    int
	Found      int
	NotFound   int
}

// Apply - run the operations in order against the root
//
// deleting an absent key is counted as missing and replay continues;
// any other failure stops replay and is returned with the counts so far
func Apply(root *snapshot.Root, ops []Operation, log *logger.L) (Summary, error) {
	summary := Summary{}

	for _, op := range ops {
		switch op.Kind {

		case Insert:
			changed := false
			_, err := root.Update(func(tree avl.Tree) (avl.Tree, error) {
				t := avl.Insert(tree, op.Key)
				changed = t != tree
				return t, nil
			})
			if nil != err {
				log.Errorf("line: %d  insert: %d  error: %s", op.Line, op.Key, err)
				return summary, &LineError{Line: op.Line, Err: err}
			}
			if changed {
				summary.Inserted += 1
			} else {
				log.Tracef("line: %d  duplicate: %d", op.Line, op.Key)
				summary.Duplicates += 1
			}

		case Delete:
			missing := false
			_, err := root.Update(func(tree avl.Tree) (avl.Tree, error) {
				t, err := avl.Delete(tree, op.Key)
				missing = fault.IsErrNotFound(err)
				if missing {
					return tree, nil
				}
				return t, err
			})
			if nil != err {
				log.Errorf("line: %d  delete: %d  error: %s", op.Line, op.Key, err)
				return summary, &LineError{Line: op.Line, Err: err}
			}
			if missing {
				log.Debugf("line: %d  delete absent key: %d", op.Line, op.Key)
				summary.Missing += 1
			} else {
				summary.Deleted += 1
			}

		case Find:
			if root.Find(op.Key) {
				summary.Found += 1
			} else {
				summary.NotFound += 1
			}

		default:
			return summary, &LineError{Line: op.Line, Err: fault.ErrInvalidOperation}
		}
	}

	log.Infof("applied: %d  inserted: %d  deleted: %d  missing: %d", len(ops), summary.Inserted, summary.Deleted, summary.Missing)
	return summary, nil
}
