// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/traversal"
)

type keysResult struct {
	Order string `json:"order"`
	Keys  []int  `json:"keys"`
}

type findResult struct {
	Key   int  `json:"key"`
	Found bool `json:"found"`
}

type deleteResult struct {
	Key    int   `json:"key"`
	Keys   []int `json:"keys"`
	Height int   `json:"height"`
}

type heightResult struct {
	Height int `json:"height"`
	Size   int `json:"size"`
}

func runKeys(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}

	order := c.String("order")
	var seq traversal.Sequence
	switch order {
	case "in", "":
		order = "in"
		seq = traversal.InOrder(tree)
	case "breadth":
		seq = traversal.BreadthFirst(tree)
	default:
		return ErrInvalidOrder
	}

	keys, err := traversal.Collect(seq)
	if nil != err {
		return err
	}

	return output(m, keysResult{Order: order, Keys: keys}, joinKeys(keys))
}

func runFind(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("key") {
		return ErrMissingKey
	}
	key := c.Int("key")

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}

	found := avl.Find(tree, key)
	text := "not found"
	if found {
		text = "found"
	}
	return output(m, findResult{Key: key, Found: found}, text)
}

func runDelete(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("key") {
		return ErrMissingKey
	}
	key := c.Int("key")

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}

	tree, err = avl.Delete(tree, key)
	if nil != err {
		return fmt.Errorf("delete key: %d  error: %s", key, err)
	}

	keys, err := traversal.Collect(traversal.InOrder(tree))
	if nil != err {
		return err
	}

	result := deleteResult{
		Key:    key,
		Keys:   keys,
		Height: avl.Height(tree),
	}
	return output(m, result, joinKeys(keys))
}

func runHeight(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}

	result := heightResult{
		Height: avl.Height(tree),
		Size:   avl.Size(tree),
	}
	return output(m, result, fmt.Sprintf("height: %d  size: %d", result.Height, result.Size))
}

// insert the argument keys in the order given
func buildTree(c *cli.Context, m *metadata) (avl.Tree, error) {
	args := c.Args()
	if 0 == len(args) {
		return avl.Empty(), ErrNoKeys
	}

	keys := make([]int, len(args))
	for i, s := range args {
		k, err := strconv.Atoi(s)
		if nil != err {
			return avl.Empty(), fmt.Errorf("argument: %q  error: %s", s, fault.ErrInvalidKey)
		}
		keys[i] = k
	}

	tree, err := traversal.Rebuild(traversal.Slice(keys), avl.Empty(), avl.Insert)
	if nil != err {
		return avl.Empty(), err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "inserted: %d  distinct: %d  height: %d\n", len(keys), avl.Size(tree), avl.Height(tree))
	}
	return tree, nil
}

// either JSON or plain text depending on the global flag
func output(m *metadata, result interface{}, text string) error {
	if m.json {
		return printJson(m.w, result)
	}
	_, err := fmt.Fprintln(m.w, text)
	return err
}

func joinKeys(keys []int) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = strconv.Itoa(k)
	}
	return strings.Join(s, " ")
}
