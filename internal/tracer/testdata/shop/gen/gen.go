package gen

import "example.com/shop/model"

type Box struct {
	Items []model.Item
}

func Map[T any](in []T, f func(T) T) []T {
	var out []T
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func Entry(items []model.Item) int {
	type Box struct{ n int }
	b := Box{n: len(items)}
	_ = Map(items, func(i model.Item) model.Item { return i })
	return b.n + Wrap().count()
}

func Wrap() Box { return Box{} }

func (b Box) count() int { return len(b.Items) }
