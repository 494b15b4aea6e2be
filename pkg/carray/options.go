package carray

type Option func(w *Writer)

func WithElemType(t string) Option {
	return func(w *Writer) {
		w.elemType = t
	}
}

func WithComment(c string) Option {
	return func(w *Writer) {
		w.comment = c
	}
}
