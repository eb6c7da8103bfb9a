package util

//*******************************************
// dictionary
//*******************************************

type Dict[K comparable, V any] map[K]V

func NewDict[K comparable, V any](cap int) Dict[K, V] {
	return make(map[K]V, cap)
}

func (self Dict[K, V]) ContainsKey(key K) bool {
	_, ok := self[key]
	return ok
}

func (self Dict[K, V]) Get(key K) V {
	return self[key]
}

func (self Dict[K, V]) Set(key K, value V) {
	self[key] = value
}

func (self Dict[K, V]) Delete(key K) {
	delete(self, key)
}

func (self Dict[K, V]) Length() int {
	return len(self)
}

//*******************************************
// growable list
//*******************************************

type List[T any] []T

func NewList[T any](cap int) List[T] {
	return make([]T, 0, cap)
}

func (self *List[T]) Add(value T) {
	*self = append(*self, value)
}

func (self List[T]) Get(index int) T {
	return self[index]
}

func (self *List[T]) Set(index int, value T) {
	(*self)[index] = value
}

func (self List[T]) Length() int {
	return len(self)
}

// Clear resets the length but keeps the allocated capacity.
func (self *List[T]) Clear() {
	*self = (*self)[:0]
}

//*******************************************
// fixed-size array
//*******************************************

type Array[T any] []T

func NewArray[T any](size int) Array[T] {
	return make([]T, size)
}

func (self Array[T]) Get(index int) T {
	return self[index]
}

func (self *Array[T]) Set(index int, value T) {
	(*self)[index] = value
}

func (self Array[T]) Length() int {
	return len(self)
}

//*******************************************
// optional
//*******************************************

type Optional[T any] struct {
	Value     T
	has_value bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, has_value: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (self Optional[T]) HasValue() bool {
	return self.has_value
}

//*******************************************
// tuples
//*******************************************

type Tuple[A any, B any] struct {
	A A
	B B
}

func MakeTuple[A any, B any](a A, b B) Tuple[A, B] {
	return Tuple[A, B]{A: a, B: b}
}

type Triple[A any, B any, C any] struct {
	A A
	B B
	C C
}

func MakeTriple[A any, B any, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{A: a, B: b, C: c}
}
