package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/go-queues/pkg/queues"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Unbounded Queue walkthrough",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Queue - typical usage")
		fmt.Println("--")

		step("Create a new empty queue:")
		q := queues.NewQueue[int]()
		report("Size() = %d", q.Size())

		step("Add elements to it:")
		for _, v := range []int{1, -2, 3} {
			if _, _, err := q.Add(v); err != nil {
				return err
			}
			report("Add(%d) ok", v)
		}

		step("Check the queue's size:")
		report("Size() = %d", q.Size())

		step("Remove an element:")
		v, err := q.Remove()
		if err != nil {
			return err
		}
		report("Remove() = %d", v)

		step("Peek at the next element scheduled for removal:")
		v, err = q.Peek()
		if err != nil {
			return err
		}
		report("Peek() = %d", v)
		report("Size() = %d (unchanged)", q.Size())

		step("Remove the remaining elements:")
		for q.Size() > 0 {
			v, err := q.Remove()
			if err != nil {
				return err
			}
			report("Remove() = %d", v)
		}

		step("Peek into the empty queue:")
		if _, err := q.Peek(); err != nil {
			report("error: %v", err)
		}

		step("Attempt to remove an element from the empty queue:")
		if _, err := q.Remove(); err != nil {
			report("error: %v", err)
		}

		fmt.Println("\n--")
		return nil
	},
}
