// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	json    bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "query an AVL tree built from the argument keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " print results as JSON",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "keys",
			Usage:     "list the keys of the tree",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " traversal `ORDER` [in|breadth]",
				},
			},
			Action: runKeys,
		},
		{
			Name:      "find",
			Usage:     "check whether a key is in the tree",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "key, k",
					Usage: "*key to search for `KEY`",
				},
			},
			Action: runFind,
		},
		{
			Name:      "delete",
			Usage:     "remove a key and list the remaining keys",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "key, k",
					Usage: "*key to delete `KEY`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "height",
			Usage:     "height and size of the tree",
			ArgsUsage: "KEY...",
			Action:    runHeight,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				m := c.App.Metadata["config"].(*metadata)
				return output(m, version, version)
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			json:    c.GlobalBool("json"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
