package stream

import (
	"sync"
	"sync/atomic"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/panjf2000/ants/v2"
)

// The untyped pipeline core. Stages form a linked chain of pipes; a
// terminal operation appends itself, walks the chain backwards wiring
// each stage's consumer/settler/cleaner/canceller into the next, then
// drives the source through the head. The typed Stream facade boxes and
// unboxes elements at the package boundary.

type Option func(*pipe)
type wrapperType func(next *pipe) []Option

// iterator is the untyped element source of a pipeline.
type iterator interface {
	next() (any, bool)
	length() int
}

type pipe struct {
	source    iterator
	prev      *pipe
	wrapper   wrapperType
	consumer  func(any)
	settler   func(size int64, opts ...Option)
	cleaner   func()
	canceller func() bool
	parallel  int
	name      string
}

func (p *pipe) terminate() {
	head := p.setFunctor()
	it := p.source
	head.settler(int64(it.length()))
	for v, ok := it.next(); ok && !head.canceller(); v, ok = it.next() {
		head.consumeOne(v)
	}
	head.cleaner()
}

func (p *pipe) consumeOne(e any) {
	p.consumer(e)
}

func (p *pipe) unwrap(next *pipe) {
	opts := p.wrapper(next)
	for _, o := range opts {
		o(p)
	}
}

func wrapConsumer(c func(any)) Option             { return func(p *pipe) { p.consumer = c } }
func wrapSettler(c func(int64, ...Option)) Option { return func(p *pipe) { p.settler = c } }
func wrapCleaner(c func()) Option                 { return func(p *pipe) { p.cleaner = c } }
func wrapCanceller(c func() bool) Option          { return func(p *pipe) { p.canceller = c } }

func (p *pipe) setFunctor() *pipe {
	p.unwrap(&pipe{
		source:    p.source,
		prev:      p,
		consumer:  func(any) {},
		settler:   func(int64, ...Option) {},
		cleaner:   func() {},
		canceller: func() bool { return false },
		parallel:  0,
		name:      "DummyTail",
	})
	q := p
	for ; q.prev != nil; q = q.prev {
		q.prev.unwrap(q)
	}
	return q
}

func newPipe(prev *pipe, wrapper wrapperType, name string) *pipe {
	return &pipe{
		source:   prev.source,
		prev:     prev,
		wrapper:  wrapper,
		parallel: 0,
		name:     name,
	}
}

// stateless stages

func (p *pipe) filter(pred func(any) bool) *pipe {
	// p is prev
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			if pred(e) {
				next.consumeOne(e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newPipe(p, wrapper, "Filter")
}

func (p *pipe) mapped(f func(any) any) *pipe {
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			next.consumeOne(f(e))
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newPipe(p, wrapper, "Map")
}

func (p *pipe) peek(f func(any)) *pipe {
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			f(e)
			next.consumeOne(e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newPipe(p, wrapper, "Peek")
}

func (p *pipe) parallelize(n int) *pipe {
	wrapper := func(next *pipe) []Option {
		var wg sync.WaitGroup
		var pool *ants.Pool
		settler := func(sz int64, opts ...Option) {
			if n >= 0 {
				toggleParallel := func(this *pipe) { this.parallel = n }
				opts = append(opts, toggleParallel)
			}
			for _, o := range opts {
				o(next.prev)
			}
			pool, _ = ants.NewPool(max(n, 1))
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			wg.Add(1)
			f := func() {
				next.consumeOne(e)
				wg.Done()
			}
			_ = pool.Submit(f)
		}
		cleaner := func() {
			wg.Wait()
			pool.Release()
			pool = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newPipe(p, wrapper, "Parallel")
}

// stateful stages

func (p *pipe) distinct(hash func(any) uint64) *pipe {
	wrapper := func(next *pipe) []Option {
		var set *hashmap.HashMap
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			set = &hashmap.HashMap{}
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			if _, exist := set.GetOrInsert(hash(e), struct{}{}); !exist {
				next.consumeOne(e)
			}
		}
		cleaner := func() {
			set = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newPipe(p, wrapper, "Distinct")
}

func (p *pipe) sorted(cmp func(a, b any) int, keepParallel bool) *pipe {
	wrapper := func(next *pipe) []Option {
		var buffer chan any
		var drained chan struct{}
		var mp *treemap.Map
		this := next.prev
		settler := func(capacity int64, opts ...Option) {
			for _, o := range opts {
				o(this)
			}
			mp = treemap.NewWith(utils.Comparator(cmp))
			if this.parallel > 0 {
				buffer = make(chan any, capacity)
				drained = make(chan struct{})
				writer := func() {
					for e := range buffer {
						if c, ok := mp.Get(e); ok {
							mp.Put(e, c.(int)+1)
						} else {
							mp.Put(e, 1)
						}
					}
					close(drained)
				}
				go writer()
			}
			next.settler(capacity, opts...)
		}
		consumer := func(e any) {
			if this.parallel > 0 {
				buffer <- e
			} else {
				if c, ok := mp.Get(e); ok {
					mp.Put(e, c.(int)+1)
				} else {
					mp.Put(e, 1)
				}
			}
		}
		cleaner := func() {
			opts := make([]Option, 0)
			if !keepParallel || this.parallel == 0 {
				opts = append(opts, func(q *pipe) { q.parallel = 0 })
			}
			if this.parallel > 0 {
				// The writer goroutine owns mp until the buffer is
				// drained; wait for it before reading the map.
				close(buffer)
				<-drained
			}
			next.settler(int64(mp.Size()), opts...)
			it := mp.Iterator()
			for it.Next() {
				e, c := it.Key(), it.Value().(int)
				for ; c > 0; c-- {
					next.consumeOne(e)
				}
			}
			mp.Clear()
			mp = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	if keepParallel {
		return newPipe(p, wrapper, "Sorted").parallelize(-1)
	}
	return newPipe(p, wrapper, "Sorted")
}

func (p *pipe) limit(n int64) *pipe {
	wrapper := func(next *pipe) []Option {
		var cnt *int64
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			cnt = new(int64)
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			for old := atomic.LoadInt64(cnt); old < n; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					next.consumeOne(e)
					break
				}
			}
		}
		cleaner := func() {
			atomic.StoreInt64(cnt, n)
			cnt = nil
			next.cleaner()
		}
		canceller := func() bool {
			return atomic.LoadInt64(cnt) == n || next.canceller()
		}
		return append(defaultWrapper(next), wrapSettler(settler),
			wrapConsumer(consumer), wrapCleaner(cleaner), wrapCanceller(canceller))
	}
	return newPipe(p, wrapper, "Limit")
}

func (p *pipe) skip(n int64) *pipe {
	wrapper := func(next *pipe) []Option {
		var cnt *int64
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			cnt = new(int64)
			next.settler(sz, opts...)
		}
		consumer := func(e any) {
			for old := atomic.LoadInt64(cnt); old < n; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					return
				}
			}
			next.consumeOne(e)
		}
		cleaner := func() {
			atomic.StoreInt64(cnt, n)
			cnt = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newPipe(p, wrapper, "Skip")
}

// terminal operations

func (p *pipe) toSlice() []any {
	var slice []any
	wrapper := func(next *pipe) []Option {
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			slice = make([]any, 0, sz)
		}
		consumer := func(e any) {
			slice = append(slice, e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapSettler(settler))
	}
	newPipe(p, wrapper, "ToSlice").terminate()
	return slice
}

func (p *pipe) forEach(f func(any)) {
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) { f(e) }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newPipe(p, wrapper, "ForEach").terminate()
}

func (p *pipe) allMatch(pred func(any) bool) bool {
	var flag bool
	wrapper := func(next *pipe) []Option {
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			flag = true
			next.settler(sz)
		}
		consumer := func(e any) {
			if !pred(e) {
				flag = false
			}
		}
		canceller := func() bool {
			return !flag
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newPipe(p, wrapper, "AllMatch").terminate()
	return flag
}

func (p *pipe) anyMatch(pred func(any) bool) bool {
	var flag bool
	wrapper := func(next *pipe) []Option {
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			flag = false
			next.settler(sz)
		}
		consumer := func(e any) {
			if pred(e) {
				flag = true
			}
		}
		canceller := func() bool {
			return flag
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newPipe(p, wrapper, "AnyMatch").terminate()
	return flag
}

func (p *pipe) reduce(acc func(a, b any) any) (any, bool) {
	var result any
	none := true
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			if none {
				result = e
				none = false
			} else {
				result = acc(result, e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newPipe(p, wrapper, "Reduce").terminate()
	return result, !none
}

func (p *pipe) reduceFrom(init any, acc func(a, b any) any) any {
	result := init
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			result = acc(result, e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newPipe(p, wrapper, "ReduceFrom").terminate()
	return result
}

func (p *pipe) findFirst() (any, bool) {
	none := true
	var result any
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			if none {
				result = e
				none = false
			}
		}
		canceller := func() bool {
			return !none
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newPipe(p, wrapper, "FindFirst").terminate()
	return result, !none
}

func (p *pipe) findFirstMatch(pred func(any) bool) (any, bool) {
	none := true
	var result any
	wrapper := func(next *pipe) []Option {
		consumer := func(e any) {
			if none && pred(e) {
				result = e
				none = false
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newPipe(p, wrapper, "FindFirstMatch").terminate()
	return result, !none
}

func (p *pipe) count() int64 {
	var cnt int64
	wrapper := func(next *pipe) []Option {
		consumer := func(any) { cnt++ }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newPipe(p, wrapper, "Count").terminate()
	return cnt
}
