package ecs

import "iter"

// column is a type-erased component column inside an archetype.
type column interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Cap() int
	Compact() map[int]int
	Iter() iter.Seq[int]
}

const columnBlockSize = 64

// componentColumn stores components of a single type T in fixed-size
// blocks with a free list, so slot indices stay stable across deletes.
type componentColumn[T any] struct {
	blocks    [][columnBlockSize]T
	filled    [][columnBlockSize]bool
	freeSlots []int
	nextIndex int
}

// Append adds a component and returns its slot index, reusing a free slot
// when one exists.
func (c *componentColumn[T]) Append(item any) int {
	var value T
	if ptr, ok := item.(*T); ok {
		value = *ptr
	} else if val, ok := item.(T); ok {
		value = val
	} else {
		return -1
	}

	if len(c.freeSlots) > 0 {
		index := c.freeSlots[len(c.freeSlots)-1]
		c.freeSlots = c.freeSlots[:len(c.freeSlots)-1]

		blockIdx := index / columnBlockSize
		slotIdx := index % columnBlockSize

		c.blocks[blockIdx][slotIdx] = value
		c.filled[blockIdx][slotIdx] = true
		return index
	}

	index := c.nextIndex
	c.nextIndex++

	blockIdx := index / columnBlockSize
	slotIdx := index % columnBlockSize

	if blockIdx >= len(c.blocks) {
		c.blocks = append(c.blocks, [columnBlockSize]T{})
		c.filled = append(c.filled, [columnBlockSize]bool{})
	}

	c.blocks[blockIdx][slotIdx] = value
	c.filled[blockIdx][slotIdx] = true
	return index
}

// Get returns a pointer to the component at the given slot, or nil.
func (c *componentColumn[T]) Get(index int) any {
	if index < 0 {
		return nil
	}

	blockIdx := index / columnBlockSize
	slotIdx := index % columnBlockSize

	if blockIdx >= len(c.blocks) {
		return nil
	}

	if !c.filled[blockIdx][slotIdx] {
		return nil
	}

	return &c.blocks[blockIdx][slotIdx]
}

// Delete marks a slot as empty and pushes it onto the free list.
func (c *componentColumn[T]) Delete(index int) {
	if index < 0 {
		return
	}

	blockIdx := index / columnBlockSize
	slotIdx := index % columnBlockSize

	if blockIdx >= len(c.blocks) {
		return
	}

	if c.filled[blockIdx][slotIdx] {
		c.filled[blockIdx][slotIdx] = false
		var zero T
		c.blocks[blockIdx][slotIdx] = zero
		c.freeSlots = append(c.freeSlots, index)
	}
}

// Has reports whether a component occupies the given slot.
func (c *componentColumn[T]) Has(index int) bool {
	if index < 0 {
		return false
	}

	blockIdx := index / columnBlockSize
	slotIdx := index % columnBlockSize

	if blockIdx >= len(c.blocks) {
		return false
	}

	return c.filled[blockIdx][slotIdx]
}

// Len returns the number of live components.
func (c *componentColumn[T]) Len() int {
	return c.nextIndex - len(c.freeSlots)
}

// Cap returns the number of allocated slots.
func (c *componentColumn[T]) Cap() int {
	return len(c.blocks) * columnBlockSize
}

// Compact rewrites the column without holes and returns the old-to-new
// slot index mapping.
func (c *componentColumn[T]) Compact() map[int]int {
	indexMap := make(map[int]int)
	writePos := 0

	live := c.nextIndex - len(c.freeSlots)
	if c.nextIndex == 0 || live == 0 {
		c.blocks = make([][columnBlockSize]T, 1)
		c.filled = make([][columnBlockSize]bool, 1)
		c.freeSlots = nil
		c.nextIndex = 0
		return indexMap
	}

	numBlocks := (live + columnBlockSize - 1) / columnBlockSize
	newBlocks := make([][columnBlockSize]T, numBlocks)
	newFilled := make([][columnBlockSize]bool, numBlocks)

	for readIdx := 0; readIdx < c.nextIndex; readIdx++ {
		readBlockIdx := readIdx / columnBlockSize
		readSlotIdx := readIdx % columnBlockSize

		if c.filled[readBlockIdx][readSlotIdx] {
			indexMap[readIdx] = writePos

			writeBlockIdx := writePos / columnBlockSize
			writeSlotIdx := writePos % columnBlockSize

			newBlocks[writeBlockIdx][writeSlotIdx] = c.blocks[readBlockIdx][readSlotIdx]
			newFilled[writeBlockIdx][writeSlotIdx] = true

			writePos++
		}
	}

	c.blocks = newBlocks
	c.filled = newFilled
	c.freeSlots = nil
	c.nextIndex = writePos

	return indexMap
}

// Iter yields the slot indices of live components in slot order.
func (c *componentColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.nextIndex; i++ {
			blockIdx := i / columnBlockSize
			slotIdx := i % columnBlockSize

			if blockIdx >= len(c.filled) {
				continue
			}

			if c.filled[blockIdx][slotIdx] {
				if !yield(i) {
					return
				}
			}
		}
	}
}
