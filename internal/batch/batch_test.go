package batch

import (
	"reflect"
	"testing"
)

func TestBatch(t *testing.T) {
	b := New(3)

	if b.Len() != 0 || b.Full() {
		t.Fatal("new batch should be empty and not full")
	}

	b.Add("cat", "gato")
	b.Add("dog", "perro")
	if b.Full() {
		t.Error("batch with 2 of 3 pairs should not be full")
	}

	b.Add("bird", "pajaro")
	if !b.Full() {
		t.Error("batch with 3 of 3 pairs should be full")
	}

	want := []Pair{
		{Source: "cat", Translated: "gato"},
		{Source: "dog", Translated: "perro"},
		{Source: "bird", Translated: "pajaro"},
	}
	if got := b.Pairs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pairs() = %v, want %v", got, want)
	}

	b.Reset()
	if b.Len() != 0 || b.Full() {
		t.Error("batch should be empty after Reset")
	}
}

func TestBatch_PairsIsACopy(t *testing.T) {
	b := New(2)
	b.Add("cat", "gato")

	pairs := b.Pairs()
	b.Reset()
	b.Add("dog", "perro")

	if pairs[0].Source != "cat" {
		t.Errorf("earlier Pairs() result changed to %v", pairs)
	}
}

func TestNew_MinimumSize(t *testing.T) {
	tests := []int{0, -5}
	for _, size := range tests {
		b := New(size)
		b.Add("cat", "gato")
		if !b.Full() {
			t.Errorf("New(%d) should be full after one pair", size)
		}
	}
}

func TestSingle(t *testing.T) {
	want := []Pair{{Source: "cat", Translated: "gato"}}
	if got := Single("cat", "gato"); !reflect.DeepEqual(got, want) {
		t.Errorf("Single() = %v, want %v", got, want)
	}
}
