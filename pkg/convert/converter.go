package convert

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"img2carray/pkg/carray"
	"img2carray/pkg/pixel"
)

// Screen geometry of the DE1-SoC VGA framebuffer. Other sizes convert
// fine but display incorrectly on device.
const (
	ScreenWidth  = 320
	ScreenHeight = 240
)

func New(fs afero.Fs, fetcher *Fetcher, writer *carray.Writer, logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		fs:      fs,
		fetcher: fetcher,
		writer:  writer,
		log:     logger,
		width:   ScreenWidth,
		height:  ScreenHeight,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Converter struct {
	fs      afero.Fs
	fetcher *Fetcher
	writer  *carray.Writer
	log     *zap.Logger

	fit    bool
	width  int
	height int
}

// Params names one conversion run.
type Params struct {
	ImagePath string
	FilePath  string
	ArrayName string
}

// Run converts the image at p.ImagePath into a C array declaration named
// p.ArrayName and writes it to p.FilePath. Every failure is fatal to the
// run, nothing is retried.
func (c *Converter) Run(p Params) error {
	bs, err := c.fetcher.Get(p.ImagePath)
	if err != nil {
		return err
	}

	img, err := decodeImage(bs)
	if err != nil {
		return err
	}

	img = c.sized(img)

	out, err := c.writer.Render(pixel.FromImage(img), p.ArrayName)
	if err != nil {
		return fmt.Errorf("render array failed: %w", err)
	}

	if err := c.write(p.FilePath, out); err != nil {
		return fmt.Errorf("write header failed: %w", err)
	}

	c.log.With(
		zap.String("array", p.ArrayName),
		zap.String("file", p.FilePath),
		zap.String("image", p.ImagePath),
		zap.String("size", bytesize.New(float64(len(out))).String()),
	).Info("header written")

	return nil
}

func (c *Converter) sized(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == c.width && bounds.Dy() == c.height {
		return img
	}

	if c.fit {
		img2 := imaging.Fit(img, c.width, c.height, imaging.Lanczos)
		c.log.With(
			zap.Int("width", img2.Bounds().Dx()),
			zap.Int("height", img2.Bounds().Dy()),
		).Debug("image resized")
		return img2
	}

	c.log.With(
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
	).Warn(fmt.Sprintf("image is not %dx%d, on-device display will be wrong", c.width, c.height))

	return img
}

func (c *Converter) write(path string, bs []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if exists, err := afero.DirExists(c.fs, dir); err != nil {
			return err
		} else if !exists {
			if err2 := c.fs.MkdirAll(dir, 0755); err2 != nil {
				return err2
			}
		}
	}

	// stage next to the target then rename
	tmp := fmt.Sprintf("%s.%s", path, xid.New().String())
	if err := afero.WriteFile(c.fs, tmp, bs, 0644); err != nil {
		return err
	}

	return c.fs.Rename(tmp, path)
}
