package mq

import "testing"

func TestEmitFansOutToSubscribers(t *testing.T) {
	var got []Index
	Subscribe(func(idx Index) {
		got = append(got, idx)
	})

	Emit("grocery-item-created", Index{EntityType: "shoppingList", Method: "POST", EntityId: "abc"})

	if len(got) != 1 {
		t.Fatalf("listener calls = %d, want 1", len(got))
	}
	if got[0].EntityType != "shoppingList" || got[0].EntityId != "abc" {
		t.Errorf("unexpected event: %+v", got[0])
	}
}
