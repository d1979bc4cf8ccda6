package semantic

import "http-fixture/application/util/form"

// Params is an ordered set of unique keys with a string value each.
//
// Keys are iterated in the order they were first set.
// Setting an existing key replaces its value but keeps its position.
// The zero value is an empty set ready to use.
type Params struct {
	keys   []string
	values map[string]string
}

// ParamsFrom builds Params from pairs; later duplicates win.
func ParamsFrom(pairs []form.Pair) Params {
	var p Params
	for _, pair := range pairs {
		p.Set(pair.Key, pair.Value)
	}
	return p
}

func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// SetDefault sets key only when it is not present yet.
func (p *Params) SetDefault(key, value string) {
	if !p.Has(key) {
		p.Set(key, value)
	}
}

func (p Params) Get(key string) (value string, ok bool) {
	value, ok = p.values[key]
	return
}

func (p Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

func (p Params) Len() int { return len(p.keys) }

// Keys returns the keys in iteration order.
func (p Params) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Pairs returns key/value pairs in iteration order.
func (p Params) Pairs() []form.Pair {
	pairs := make([]form.Pair, 0, len(p.keys))
	for _, k := range p.keys {
		pairs = append(pairs, form.Pair{Key: k, Value: p.values[k]})
	}
	return pairs
}

// Merge returns a new set holding p followed by other.
// On a shared key the value of other wins, at the position it has in p.
func (p Params) Merge(other Params) Params {
	merged := ParamsFrom(p.Pairs())
	for _, pair := range other.Pairs() {
		merged.Set(pair.Key, pair.Value)
	}
	return merged
}
