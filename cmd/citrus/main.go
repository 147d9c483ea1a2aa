// citrus - field-file CLI tool
//
// Usage:
//
//	citrus show [--fld -w N -H N] [--zst] [file]   Decode a field and print it
//	citrus info [--fld -w N -H N] [--zst] [file]   Print dimensions and panel stats
//	citrus convert --to fld|fldx [flags] [file]    Transcode between the formats
//	citrus b64 encode|decode [flags] [file]        Base64 transport
//
// If no file is given (or the file is "-"), reads from stdin and writes
// to stdout. The .fld format stores no dimensions, so -w/-H are required
// whenever a .fld stream is read; they default to the canonical 15x15.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/oj-tools/citrus/field"
	"github.com/oj-tools/citrus/format"
)

const version = "0.2.0"

func main() {
	cmd := &cli.Command{
		Name:    "citrus",
		Usage:   "inspect and convert 100% Orange Juice field files",
		Version: version,
		Commands: []*cli.Command{
			showCommand(),
			infoCommand(),
			convertCommand(),
			b64Command(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// inputFlags are shared by every command that reads a field.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "fld", Usage: "read the legacy .fld format instead of .fldx"},
		&cli.BoolFlag{Name: "zst", Usage: "input is a zstd-compressed .fldx stream"},
		&cli.IntFlag{Name: "width", Aliases: []string{"w"}, Value: 15, Usage: "board width (.fld only)"},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Value: 15, Usage: "board height (.fld only)"},
	}
}

// readField decodes the field named by the command's file argument,
// honoring the shared input flags.
func readField(cmd *cli.Command) (*field.Field, error) {
	in, err := openInput(cmd.Args().First())
	if err != nil {
		return nil, err
	}
	defer in.Close()

	switch {
	case cmd.Bool("fld"):
		dims := format.Dims{Width: int(cmd.Int("width")), Height: int(cmd.Int("height"))}
		return format.DecodeFLD(in, dims)
	case cmd.Bool("zst"):
		return format.DecodeFLDXCompressed(in)
	default:
		return format.DecodeFLDX(in)
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "decode a field and print its text rendering",
		ArgsUsage: "[file]",
		Flags:     inputFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			f, err := readField(cmd)
			if err != nil {
				return err
			}
			fmt.Printf("%dx%d%s\n", f.Width(), f.Height(), f)
			return nil
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "print a field's dimensions and panel-kind counts",
		ArgsUsage: "[file]",
		Flags:     inputFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			f, err := readField(cmd)
			if err != nil {
				return err
			}

			counts := map[field.PanelKind]int{}
			kinds := []field.PanelKind{}
			for x, y := range f.Positions() {
				k := f.At(x, y).Kind
				if counts[k] == 0 {
					kinds = append(kinds, k)
				}
				counts[k]++
			}
			sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

			fmt.Printf("dimensions: %dx%d (%d panels)\n", f.Width(), f.Height(), f.Len())
			for _, k := range kinds {
				fmt.Printf("%12s: %d\n", k, counts[k])
			}
			return nil
		},
	}
}

func convertCommand() *cli.Command {
	flags := append(inputFlags(),
		&cli.StringFlag{Name: "to", Value: "fldx", Usage: "output format: fld or fldx"},
		&cli.BoolFlag{Name: "compress", Usage: "zstd-compress the .fldx output"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
	)

	return &cli.Command{
		Name:      "convert",
		Usage:     "transcode a field between .fld and .fldx",
		ArgsUsage: "[file]",
		Flags:     flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			f, err := readField(cmd)
			if err != nil {
				return err
			}

			out, err := openOutput(cmd.String("out"))
			if err != nil {
				return err
			}
			defer out.Close()

			switch cmd.String("to") {
			case "fld":
				dims, err := format.EncodeFLD(out, f)
				if err != nil {
					return err
				}
				log.Infof("wrote .fld stream, dimensions %s (not stored in the file)", dims)
				return nil
			case "fldx":
				if cmd.Bool("compress") {
					return format.EncodeFLDXCompressed(out, f)
				}
				return format.EncodeFLDX(out, f)
			default:
				return fmt.Errorf("unknown output format %q", cmd.String("to"))
			}
		},
	}
}

func b64Command() *cli.Command {
	return &cli.Command{
		Name:  "b64",
		Usage: "encode or decode the base64 transport",
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "read a binary field stream, print URL-safe base64",
				ArgsUsage: "[file]",
				Flags:     inputFlags(),
				Action: func(_ context.Context, cmd *cli.Command) error {
					f, err := readField(cmd)
					if err != nil {
						return err
					}
					var s string
					if cmd.Bool("fld") {
						var dims format.Dims
						s, dims, err = format.EncodeFLDBase64(f)
						if err == nil {
							log.Infof("dimensions %s (not stored in the .fld stream)", dims)
						}
					} else {
						s, err = format.EncodeFLDXBase64(f)
					}
					if err != nil {
						return err
					}
					fmt.Println(s)
					return nil
				},
			},
			{
				Name:      "decode",
				Usage:     "read base64 text, write the binary .fldx stream",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					in, err := openInput(cmd.Args().First())
					if err != nil {
						return err
					}
					defer in.Close()

					text, err := io.ReadAll(in)
					if err != nil {
						return fmt.Errorf("read input: %w", err)
					}
					f, err := format.DecodeFLDXBase64(strings.TrimSpace(string(text)))
					if err != nil {
						return err
					}

					out, err := openOutput(cmd.String("out"))
					if err != nil {
						return err
					}
					defer out.Close()
					return format.EncodeFLDX(out, f)
				},
			},
		},
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
