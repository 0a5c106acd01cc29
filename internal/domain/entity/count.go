package entity

import "fmt"

// CategoryCount accumulates counts per category (instance type or DB class)
// and keeps a running total. Categories enumerate in first-seen order.
type CategoryCount struct {
	keys   []string
	counts map[string]int
	total  int
}

// NewCategoryCount creates an empty CategoryCount.
func NewCategoryCount() *CategoryCount {
	return &CategoryCount{counts: make(map[string]int)}
}

// Get returns the count for key, 0 when the key was never added.
func (c *CategoryCount) Get(key string) int {
	return c.counts[key]
}

// Has reports whether key was added.
func (c *CategoryCount) Has(key string) bool {
	_, ok := c.counts[key]
	return ok
}

// Add increases the count of key and the total by amount.
// Contributions are never negative.
func (c *CategoryCount) Add(key string, amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("entity: negative contribution %d for %q", amount, key))
	}
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key] += amount
	c.total += amount
}

// Inc adds one to key.
func (c *CategoryCount) Inc(key string) {
	c.Add(key, 1)
}

// Keys returns the categories in insertion order.
func (c *CategoryCount) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Len returns the number of categories.
func (c *CategoryCount) Len() int {
	return len(c.keys)
}

// Total returns the sum of all counts.
func (c *CategoryCount) Total() int {
	return c.total
}
