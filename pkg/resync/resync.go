// Package resync provides a sync.Once that can be reset, so lazily
// initialized singletons can be recreated between unit tests.
package resync

import "sync"

// Once behaves like sync.Once but allows Reset to make Do run again.
type Once struct {
	mu   sync.Mutex
	once *sync.Once
}

func (o *Once) Do(f func()) {
	o.mu.Lock()
	if o.once == nil {
		o.once = &sync.Once{}
	}
	once := o.once
	o.mu.Unlock()
	once.Do(f)
}

// Reset forces the next Do call to run f again.
func (o *Once) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.once = &sync.Once{}
}
