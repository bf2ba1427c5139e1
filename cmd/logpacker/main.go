package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	logpacker "github.com/EnjiRouz/Kontur.LogPacker"
	"github.com/EnjiRouz/Kontur.LogPacker/format"
)

func main() {
	app := &cli.App{
		Name:  "logpacker",
		Usage: "Losslessly compress line-oriented text logs",
		Commands: []*cli.Command{
			{
				Name:      "pack",
				Usage:     "Compress a log file into a container",
				ArgsUsage: "INPUT OUTPUT ('-' for stdin/stdout)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "codec",
						Value: "zstd",
						Usage: "generic codec: none, gzip, zstd, s2, lz4, snappy",
					},
					&cli.BoolFlag{
						Name:  "no-checksum",
						Usage: "omit the xxHash64 trailer",
					},
				},
				Action: packAction,
			},
			{
				Name:      "unpack",
				Usage:     "Restore the original log from a container",
				ArgsUsage: "INPUT OUTPUT ('-' for stdin/stdout)",
				Action:    unpackAction,
			},
			{
				Name:      "info",
				Usage:     "Show container framing without unpacking",
				ArgsUsage: "INPUT",
				Action:    infoAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func packAction(ctx *cli.Context) error {
	src, dst, err := openPair(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	opts := []logpacker.PackOption{}

	compression, err := format.ParseCompressionType(ctx.String("codec"))
	if err != nil {
		return err
	}
	opts = append(opts, logpacker.WithCompression(compression))

	if ctx.Bool("no-checksum") {
		opts = append(opts, logpacker.WithoutChecksum())
	}

	stats, err := logpacker.Pack(dst, src, opts...)
	if err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d lines, %d -> %d bytes (%s, %.1f%% saved)\n",
		stats.Lines, stats.OriginalSize, stats.PackedSize, stats.Compression, stats.SpaceSavings())

	return nil
}

func unpackAction(ctx *cli.Context) error {
	src, dst, err := openPair(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	stats, err := logpacker.Unpack(dst, src)
	if err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d lines, %d -> %d bytes (%s)\n",
		stats.Lines, stats.PackedSize, stats.OriginalSize, stats.Compression)

	return nil
}

func infoAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected INPUT, got %d arguments", ctx.NArg())
	}

	src, err := openInput(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := logpacker.Inspect(src)
	if err != nil {
		return err
	}

	fmt.Printf("version:  %d\ncodec:    %s\nchecksum: %v\n",
		info.Version, info.Compression, info.Checksum)

	return nil
}

// openPair resolves the INPUT OUTPUT argument pair of pack and unpack.
func openPair(ctx *cli.Context) (io.ReadCloser, io.WriteCloser, error) {
	if ctx.NArg() != 2 {
		return nil, nil, fmt.Errorf("expected INPUT OUTPUT, got %d arguments", ctx.NArg())
	}

	src, err := openInput(ctx.Args().Get(0))
	if err != nil {
		return nil, nil, err
	}

	dst, err := openOutput(ctx.Args().Get(1))
	if err != nil {
		src.Close()
		return nil, nil, err
	}

	return src, dst, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
