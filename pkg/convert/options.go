package convert

type Option func(c *Converter)

func WithFit() Option {
	return func(c *Converter) {
		c.fit = true
	}
}

func WithScreen(width, height int) Option {
	return func(c *Converter) {
		c.width = width
		c.height = height
	}
}
