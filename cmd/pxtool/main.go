// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pxtool converts raw pixel dumps between sized pixel formats and
// inspects the format registry. Files ending in .zst are read and written
// zstd-compressed.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/CSRedRat/vogl/core/pxfmt"
)

var log *zap.SugaredLogger

func main() {
	app := &cli.App{
		Name:  "pxtool",
		Usage: "convert and inspect raw pixel data",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			cfg := zap.NewProductionConfig()
			if c.Bool("verbose") {
				cfg = zap.NewDevelopmentConfig()
			}
			l, err := cfg.Build()
			if err != nil {
				return err
			}
			log = l.Sugar()
			return nil
		},
		Commands: []*cli.Command{
			convertCommand(),
			formatsCommand(),
			identifyCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "pxtool:", err)
		os.Exit(1)
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "re-encode a raw pixel dump into another format",
		ArgsUsage: "<input> <output>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "source pixel format", Required: true},
			&cli.StringFlag{Name: "to", Usage: "destination pixel format", Required: true},
			&cli.IntFlag{Name: "width", Usage: "block width in pixels", Required: true},
			&cli.IntFlag{Name: "height", Usage: "block height in pixels", Required: true},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("convert needs an input and an output file", 1)
			}
			srcFmt, err := pxfmt.ParseSizedFormat(c.String("from"))
			if err != nil {
				return err
			}
			dstFmt, err := pxfmt.ParseSizedFormat(c.String("to"))
			if err != nil {
				return err
			}
			w, h := c.Int("width"), c.Int("height")

			src, err := readFile(c.Args().Get(0))
			if err != nil {
				return err
			}
			log.Debugw("read pixel block",
				"file", c.Args().Get(0), "bytes", len(src), "format", srcFmt)

			dst := make([]byte, dstFmt.Size(w, h))
			if err := pxfmt.Convert(dst, src, w, h, srcFmt, dstFmt); err != nil {
				return fmt.Errorf("converting %v to %v: %w", srcFmt, dstFmt, err)
			}
			if err := writeFile(c.Args().Get(1), dst); err != nil {
				return err
			}
			log.Infow("converted pixel block",
				"from", srcFmt, "to", dstFmt, "width", w, "height", h)
			return nil
		},
	}
}

func formatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "formats",
		Usage: "list the supported pixel formats",
		Action: func(c *cli.Context) error {
			for _, f := range pxfmt.Formats() {
				var flags []string
				if f.IsPacked() {
					flags = append(flags, "packed")
				}
				if f.IsNormalized() {
					flags = append(flags, "norm")
				}
				if f.IsSigned() {
					flags = append(flags, "signed")
				}
				if f.NeedsFloat() {
					flags = append(flags, "float")
				}
				chans := make([]string, 0, 4)
				for _, ch := range f.Channels() {
					chans = append(chans, ch.String())
				}
				fmt.Printf("%-20s %2d bytes/px  %-4s %s\n",
					f, f.BytesPerPixel(), strings.Join(chans, ""), strings.Join(flags, ","))
			}
			return nil
		},
	}
}

func identifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "identify",
		Usage:     "map a base format and data type to a sized format",
		ArgsUsage: "<base-format> <data-type>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("identify needs a base format and a data type", 1)
			}
			base, err := pxfmt.ParseBaseFormat(c.Args().Get(0))
			if err != nil {
				return err
			}
			ty, err := pxfmt.ParseDataType(c.Args().Get(1))
			if err != nil {
				return err
			}
			f, err := pxfmt.Identify(base, ty)
			if err != nil {
				return err
			}
			fmt.Println(f)
			return nil
		},
	}
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	return io.ReadAll(r)
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".zst") {
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return err
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			f.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
