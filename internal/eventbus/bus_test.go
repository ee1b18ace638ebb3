// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func recordingHandler(name string, calls *[]string) HandlerFunc {
	return HandlerFunc{
		HandlerName: name,
		Fn: func(_ context.Context, _ Event) error {
			*calls = append(*calls, name)
			return nil
		},
	}
}

func TestPublishDeliversInRegistrationOrder(t *testing.T) {
	bus := New()
	var calls []string

	bus.Subscribe(TypeUserCreated, recordingHandler("first", &calls))
	bus.Subscribe(TypeUserCreated, recordingHandler("second", &calls))
	bus.Subscribe(TypeUserCreated, recordingHandler("third", &calls))

	bus.Publish(context.Background(), UserCreated{UserID: "u-1", Username: "alice"})

	want := []string{"first", "second", "third"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestPublishOnlyMatchingType(t *testing.T) {
	bus := New()
	var calls []string

	bus.Subscribe(TypeUserCreated, recordingHandler("user", &calls))
	bus.Subscribe(TypeRecipeFavorited, recordingHandler("favorite", &calls))

	bus.Publish(context.Background(), RecipeFavorited{UserID: "u-1", RecipeID: "r-1"})

	if len(calls) != 1 || calls[0] != "favorite" {
		t.Errorf("calls = %v, want only favorite", calls)
	}
}

func TestPublishNoSubscribersIsNoop(t *testing.T) {
	bus := New()
	// Must not panic or block.
	bus.Publish(context.Background(), IngredientAdded{UserID: "u-1", IngredientID: "i-1"})
}

func TestHandlerErrorDoesNotStopSiblings(t *testing.T) {
	bus := New()
	var calls []string

	bus.Subscribe(TypeUserCreated, recordingHandler("before", &calls))
	bus.Subscribe(TypeUserCreated, HandlerFunc{
		HandlerName: "failing",
		Fn: func(_ context.Context, _ Event) error {
			return errors.New("boom")
		},
	})
	bus.Subscribe(TypeUserCreated, recordingHandler("after", &calls))

	bus.Publish(context.Background(), UserCreated{UserID: "u-1", Username: "alice"})

	if len(calls) != 2 || calls[0] != "before" || calls[1] != "after" {
		t.Errorf("calls = %v, want [before after]", calls)
	}
}

func TestHandlerPanicDoesNotStopSiblings(t *testing.T) {
	bus := New()
	var calls []string

	bus.Subscribe(TypeUserCreated, HandlerFunc{
		HandlerName: "panicking",
		Fn: func(_ context.Context, _ Event) error {
			panic("handler blew up")
		},
	})
	bus.Subscribe(TypeUserCreated, recordingHandler("survivor", &calls))

	bus.Publish(context.Background(), UserCreated{UserID: "u-1", Username: "alice"})

	if len(calls) != 1 || calls[0] != "survivor" {
		t.Errorf("calls = %v, want [survivor]", calls)
	}
}

func TestPublishStampsTimestampAndType(t *testing.T) {
	bus := New()
	var got Event

	bus.Subscribe(TypeRecipeSearchPerformed, HandlerFunc{
		HandlerName: "capture",
		Fn: func(_ context.Context, e Event) error {
			got = e
			return nil
		},
	})

	before := time.Now().UTC()
	bus.Publish(context.Background(), RecipeSearchPerformed{
		UserID:      "u-1",
		Ingredients: []string{"egg"},
		ResultCount: 3,
	})
	after := time.Now().UTC()

	if got.Type != TypeRecipeSearchPerformed {
		t.Errorf("Type = %s", got.Type)
	}
	if got.Timestamp.Before(before) || got.Timestamp.After(after) {
		t.Errorf("Timestamp %s outside [%s, %s]", got.Timestamp, before, after)
	}
	data, ok := got.Data.(RecipeSearchPerformed)
	if !ok {
		t.Fatalf("Data type = %T", got.Data)
	}
	if data.ResultCount != 3 {
		t.Errorf("ResultCount = %d, want 3", data.ResultCount)
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := New()
	var mu sync.Mutex
	seen := make(map[Type]int)

	bus.SubscribeAll(HandlerFunc{
		HandlerName: "observer",
		Fn: func(_ context.Context, e Event) error {
			mu.Lock()
			seen[e.Type]++
			mu.Unlock()
			return nil
		},
	})

	for _, eventType := range Types() {
		if bus.SubscriberCount(eventType) != 1 {
			t.Errorf("SubscriberCount(%s) = %d, want 1", eventType, bus.SubscriberCount(eventType))
		}
	}

	bus.Publish(context.Background(), UserCreated{UserID: "u-1"})
	bus.Publish(context.Background(), IngredientRemoved{UserID: "u-1", IngredientID: "i-1"})

	if seen[TypeUserCreated] != 1 || seen[TypeIngredientRemoved] != 1 {
		t.Errorf("seen = %v", seen)
	}
}

func TestConcurrentPublish(t *testing.T) {
	bus := New()
	var mu sync.Mutex
	count := 0

	bus.Subscribe(TypeIngredientAdded, HandlerFunc{
		HandlerName: "counter",
		Fn: func(_ context.Context, _ Event) error {
			mu.Lock()
			count++
			mu.Unlock()
			return nil
		},
	})

	const publishers = 20
	var wg sync.WaitGroup
	wg.Add(publishers)
	for i := 0; i < publishers; i++ {
		go func() {
			defer wg.Done()
			bus.Publish(context.Background(), IngredientAdded{UserID: "u-1"})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if count != publishers {
		t.Errorf("count = %d, want %d", count, publishers)
	}
}
