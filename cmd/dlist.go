// Command dlist walks the public adlist API end to end: insertions at both
// ends and relative to existing values, deletions by value and position,
// the stack and queue facades, bulk transforms, indexed access and the
// error paths.
package main

import (
	"fmt"
	"log"

	"github.com/pengdafu/dlist-golang/adlist"
)

func section(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

func must(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	section("initialization")
	list := adlist.Create[int]()
	fmt.Printf("initial list: %v, %#v, empty=%v\n", list, list, list.Empty())

	section("insert at head and tail")
	must(list.AddNodeHead(10))
	must(list.AddNodeHead(20))
	must(list.AddNodeHead(30))
	must(list.AddNodeTail(5))
	must(list.AddNodeTail(15))
	fmt.Printf("after head/tail inserts: %v (size=%d)\n", list, list.Len())

	section("contains")
	for _, v := range []int{20, 100} {
		found, err := list.Contains(v)
		must(err)
		fmt.Printf("contains %d: %v\n", v, found)
	}

	section("insert after and before")
	must(list.InsertAfter(20, 25))
	must(list.InsertBefore(5, 7))
	fmt.Printf("after relative inserts: %v\n", list)
	if err := list.InsertAfter(99, 100); err != nil {
		log.Printf("insert after missing target: %v", err)
	}

	section("delete by value and position")
	must(list.DelValue(25))
	must(list.DelValue(30)) // head
	must(list.DelValue(15)) // tail
	fmt.Printf("after value deletes: %v\n", list)
	must(list.DelAt(1))
	fmt.Printf("after deleting position 1: %v\n", list)
	if err := list.DelAt(99); err != nil {
		log.Printf("delete at bad position: %v", err)
	}

	section("indexed access")
	seq, err := adlist.FromSlice([]int{10, 20, 30})
	must(err)
	last, err := seq.Get(-1)
	must(err)
	fmt.Printf("%v, get(-1)=%d\n", seq, last)
	if _, err := seq.Get(99); err != nil {
		log.Printf("get out of range: %v", err)
	}
	must(seq.Set(0, 11))
	fmt.Printf("after set(0, 11): %v\n", seq)

	section("stack facade")
	stack := adlist.Create[string]()
	for _, v := range []string{"A", "B", "C"} {
		must(stack.Push(v))
	}
	top, err := stack.Peek()
	must(err)
	fmt.Printf("stack %v, peek=%s\n", stack, top)
	for !stack.Empty() {
		v, err := stack.Pop()
		must(err)
		fmt.Printf("pop -> %s\n", v)
	}
	if _, err := stack.Pop(); err != nil {
		log.Printf("pop on empty stack: %v", err)
	}

	section("queue facade")
	queue := adlist.Create[string]()
	for _, v := range []string{"First", "Second", "Third"} {
		must(queue.Enqueue(v))
	}
	front, err := queue.PeekFront()
	must(err)
	rear, err := queue.PeekRear()
	must(err)
	fmt.Printf("queue %v, front=%s, rear=%s\n", queue, front, rear)
	for !queue.Empty() {
		v, err := queue.Dequeue()
		must(err)
		fmt.Printf("dequeue -> %s\n", v)
	}
	if _, err := queue.Dequeue(); err != nil {
		log.Printf("dequeue on empty queue: %v", err)
	}

	section("clone, sort, duplicates, reverse")
	src, err := adlist.FromSlice([]int{50, 10, 40, 20, 30})
	must(err)
	clone := src.Clone()
	must(clone.Sort(false))
	fmt.Printf("source %v, sorted clone %v\n", src, clone)
	must(clone.Sort(true))
	fmt.Printf("descending: %v\n", clone)
	dups, err := adlist.FromSlice([]int{1, 2, 1, 3, 2, 4})
	must(err)
	must(dups.RemoveDuplicates())
	fmt.Printf("deduplicated: %v\n", dups)
	must(src.Reverse())
	fmt.Printf("reversed source: %v\n", src)

	section("equality")
	a, err := adlist.FromSlice([]int{1, 2})
	must(err)
	b, err := adlist.FromSlice([]int{1, 2})
	must(err)
	c, err := adlist.FromSlice([]int{1, 3})
	must(err)
	fmt.Printf("%v == %v: %v\n", a, b, a.Equal(b))
	fmt.Printf("%v == %v: %v\n", a, c, a.Equal(c))

	section("iteration")
	fwd := src.Iterator(adlist.AlStartHead)
	for n := fwd.Next(); n != nil; n = fwd.Next() {
		fmt.Printf("%v ", n.NodeValue())
	}
	fmt.Println()
	rev := src.Iterator(adlist.AlStartTail)
	for n := rev.Next(); n != nil; n = rev.Next() {
		fmt.Printf("%v ", n.NodeValue())
	}
	fmt.Println()

	section("nil payloads")
	boxed := adlist.Create[any]()
	must(boxed.AddNodeTail("ok"))
	if err := boxed.AddNodeTail(nil); err != nil {
		log.Printf("inserting nil: %v (size still %d)", err, boxed.Len())
	}

	section("mixed-type sort")
	must(boxed.AddNodeTail(3))
	if err := boxed.Sort(false); err != nil {
		log.Printf("sorting %v: %v", boxed, err)
	}
}
