package model

// orderedCounter counts occurrences of keys and remembers the order in which
// each key was first seen.
type orderedCounter[K comparable] struct {
	keys   []K
	counts map[K]int
}

func newOrderedCounter[K comparable]() *orderedCounter[K] {
	return &orderedCounter[K]{counts: make(map[K]int)}
}

func (c *orderedCounter[K]) add(key K) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

// each visits keys in first-seen order
func (c *orderedCounter[K]) each(fn func(key K, count int)) {
	for _, k := range c.keys {
		fn(k, c.counts[k])
	}
}
