package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-queues/pkg/queues"
)

var bufCmd = &cobra.Command{
	Use:   "buf",
	Short: "Bounded Buffer walkthrough",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Buffer - typical usage")
		fmt.Println("--")

		step("Create a new empty buffer with capacity 3:")
		buf, err := queues.NewBuffer[int](3)
		if err != nil {
			return err
		}
		report("Size() = %d, Capacity() = %d", buf.Size(), buf.Capacity())

		step("Add elements to it:")
		for _, v := range []int{1, -2, 3} {
			if _, _, err := buf.Add(v); err != nil {
				return err
			}
			report("Add(%d) ok", v)
		}

		step("Attempt to add an element when full:")
		if _, _, err := buf.Add(-4); err != nil {
			report("error: %v", err)
		}
		report("Size() = %d (unchanged)", buf.Size())

		step("Remove an element:")
		v, err := buf.Remove()
		if err != nil {
			return err
		}
		report("Remove() = %d", v)
		report("Size() = %d", buf.Size())

		step("Peek at the next element scheduled for removal:")
		v, err = buf.Peek()
		if err != nil {
			return err
		}
		report("Peek() = %d", v)
		report("Size() = %d (unchanged)", buf.Size())

		step("Remove the remaining elements:")
		for buf.Size() > 0 {
			v, err := buf.Remove()
			if err != nil {
				return err
			}
			report("Remove() = %d", v)
		}

		step("Peek into the empty buffer:")
		if _, err := buf.Peek(); err != nil {
			report("error: %v", err)
		}

		step("Attempt to remove an element from the empty buffer:")
		if _, err := buf.Remove(); err != nil {
			report("error: %v", err)
		}

		step("Buffers can also start pre-filled with a default value:")
		pre, err := queues.NewBufferWithDefault(3, 0)
		if err != nil {
			return err
		}
		report("Size() = %d (starts at capacity)", pre.Size())
		v, err = pre.Remove()
		if err != nil {
			return err
		}
		report("Remove() = %d (a real queued element)", v)

		fmt.Println("\n--")
		return nil
	},
}
