package logpacker

import (
	"github.com/EnjiRouz/Kontur.LogPacker/compress"
	"github.com/EnjiRouz/Kontur.LogPacker/delta"
	"github.com/EnjiRouz/Kontur.LogPacker/format"
	"github.com/EnjiRouz/Kontur.LogPacker/internal/options"
)

// packConfig collects the effective settings for one Pack call.
type packConfig struct {
	compression format.CompressionType
	checksum    bool
	delta       delta.Config
}

func defaultPackConfig() packConfig {
	return packConfig{
		compression: format.CompressionZstd,
		checksum:    true,
		delta:       delta.DefaultConfig(),
	}
}

// PackOption configures a Pack call.
type PackOption = options.Option[*packConfig]

// WithCompression selects the generic codec wrapping the container body.
// The default is Zstd. The choice is recorded in the header, so Unpack
// needs no matching option.
func WithCompression(compression format.CompressionType) PackOption {
	return options.New(func(cfg *packConfig) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		cfg.compression = compression

		return nil
	})
}

// WithoutChecksum drops the xxHash64 trailer from the container. Saves
// eight bytes and a hash pass; Unpack then cannot detect corruption that
// the codec itself misses.
func WithoutChecksum() PackOption {
	return options.NoError(func(cfg *packConfig) {
		cfg.checksum = false
	})
}

// WithDeltaConfig overrides the delta transform constants. Intended for
// tests; containers written with a non-default config are not readable by
// a default Unpack.
func WithDeltaConfig(cfg delta.Config) PackOption {
	return options.NoError(func(pc *packConfig) {
		pc.delta = cfg
	})
}
