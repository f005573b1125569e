package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/comalice/fsmx/observable"
	"github.com/comalice/fsmx/table"
)

func main() {
	tb := table.New[string, string]()
	tb.From("red").On("TIMER", "green")
	tb.From("green").On("TIMER", "yellow")
	tb.From("yellow").On("TIMER", "red")

	m := observable.New("red", tb.Mapper())

	stateSub := m.SubscribeState(func(s string) {
		fmt.Println("Current state:", s)
	})
	defer stateSub.Cancel()

	eventSub := m.SubscribeEvents(func(e string) {
		fmt.Println("Event received:", e)
	})
	defer eventSub.Cancel()

	fmt.Println("\n=== Transition table (DOT) ===")
	fmt.Println(tb.DOT(m.Current()))

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	cycles := 0
	for {
		select {
		case <-ticker.C:
			cycles++
			fmt.Printf("\n--- Cycle %d ---\n", cycles)
			m.Send("TIMER")
			fmt.Println("Previous state:", m.Previous())
		case <-sig:
			fmt.Println("\nShutting down...")
			return
		}
	}
}
