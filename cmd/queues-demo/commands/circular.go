package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-queues/pkg/queues"
)

var cbufCmd = &cobra.Command{
	Use:   "cbuf",
	Short: "CircularBuffer walkthrough",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Circular buffer - typical usage")
		fmt.Println("--")

		step("Create an empty circular buffer with capacity 5:")
		cbuf, err := queues.NewCircularBuffer[int](5)
		if err != nil {
			return err
		}
		report("Size() = %d, Capacity() = %d", cbuf.Size(), cbuf.Capacity())

		step("Add elements to it:")
		for _, v := range []int{1, -2, 3} {
			addAndReport(cbuf, v)
		}
		report("Size() = %d", cbuf.Size())

		step("Remove an element:")
		v, err := cbuf.Remove()
		if err != nil {
			return err
		}
		report("Remove() = %d", v)
		report("Size() = %d", cbuf.Size())

		step("Peek at the next element scheduled for removal:")
		v, err = cbuf.Peek()
		if err != nil {
			return err
		}
		report("Peek() = %d", v)

		step("Fill the buffer:")
		for _, v := range []int{-7, 8, -9} {
			addAndReport(cbuf, v)
		}
		report("Size() = %d", cbuf.Size())

		step("Add a new element to the full buffer:")
		addAndReport(cbuf, 10)
		report("Size() = %d (still at capacity)", cbuf.Size())

		fmt.Println("\n--")
		return nil
	},
}

var cbufDefCmd = &cobra.Command{
	Use:   "cbuf-def",
	Short: "CircularBuffer with default values walkthrough",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Circular buffer with default values - typical usage")
		fmt.Println("--")

		step("Create a circular buffer with capacity 3 and default -1:")
		cbuf, err := queues.NewCircularBufferWithDefault(3, -1)
		if err != nil {
			return err
		}
		report("Size() = %d (always equal to the capacity)", cbuf.Size())

		step("Peek at the next element to be removed:")
		v, err := cbuf.Peek()
		if err != nil {
			return err
		}
		report("Peek() = %d", v)

		step("Add a new element to the buffer:")
		addAndReport(cbuf, 45)

		step("Fill the buffer with real values:")
		addAndReport(cbuf, 56)
		addAndReport(cbuf, 67)

		step("Peek at the next element to be removed:")
		v, err = cbuf.Peek()
		if err != nil {
			return err
		}
		report("Peek() = %d", v)

		step("Empty the buffer (each removal re-enqueues the default):")
		for i := 0; i < 3; i++ {
			v, err := cbuf.Remove()
			if err != nil {
				return err
			}
			report("Remove() = %d", v)
		}

		step("Confirm the buffer's size:")
		report("Size() = %d", cbuf.Size())

		step("Peek at the next element to be removed:")
		v, err = cbuf.Peek()
		if err != nil {
			return err
		}
		report("Peek() = %d", v)

		fmt.Println("\n--")
		return nil
	},
}

// addAndReport performs an Add and prints whether it displaced an element.
func addAndReport(c *queues.CircularBuffer[int], v int) {
	evicted, didEvict, _ := c.Add(v)
	if didEvict {
		report("Add(%d) evicted %d", v, evicted)
		return
	}
	report("Add(%d) ok", v)
}
