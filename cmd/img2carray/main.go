package main

import (
	"log"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"img2carray/pkg/carray"
	"img2carray/pkg/convert"
)

var imagePath = flag.String("image-path", "", "path or URL of the source image")
var filePath = flag.String("file-path", "", "output header file path: e.g. example.h")
var arrayName = flag.String("array-name", "", "name of the array variable")
var fit = flag.Bool("fit", false, "resize the image to fit the screen")
var width = flag.Int("width", convert.ScreenWidth, "screen width")
var height = flag.Int("height", convert.ScreenHeight, "screen height")
var elemType = flag.String("elem-type", "", "override the array element type")
var comment = flag.String("comment", "", "override the leading comment line")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	if *imagePath == "" || *filePath == "" || *arrayName == "" {
		log.Println("Uh oh... here is some help:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// one-shot: invokes run during construction, no lifecycle to manage
	app := fx.New(
		fx.Provide(
			func() (afero.Fs, *zap.Logger, error) {
				cfg := lo.Ternary(*debug, zap.NewDevelopmentConfig(), zap.NewProductionConfig())
				logger, err := cfg.Build()
				return afero.NewOsFs(), logger, err
			},
			func() *carray.Writer {
				var opts []carray.Option
				if *elemType != "" {
					opts = append(opts, carray.WithElemType(*elemType))
				}
				if *comment != "" {
					opts = append(opts, carray.WithComment(*comment))
				}
				return carray.NewWriter(opts...)
			},
			func(fs afero.Fs, f *convert.Fetcher, w *carray.Writer, logger *zap.Logger) *convert.Converter {
				opts := []convert.Option{convert.WithScreen(*width, *height)}
				if *fit {
					opts = append(opts, convert.WithFit())
				}
				return convert.New(fs, f, w, logger, opts...)
			},
			convert.NewFetcher,
		),
		fx.Invoke(run),
	)

	if err := app.Err(); err != nil {
		log.Fatal(err)
	}
}

func run(c *convert.Converter, logger *zap.Logger) error {
	err := c.Run(convert.Params{
		ImagePath: *imagePath,
		FilePath:  *filePath,
		ArrayName: *arrayName,
	})
	if err != nil {
		logger.With(zap.Error(err)).Error("convert failed")
	}
	return err
}
