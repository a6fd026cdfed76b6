package dogs_test

import (
	"context"
	"testing"

	"dog-registry/internal/adapters/storage/memory"
	"dog-registry/internal/domain/dogs"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"pgregory.net/rapid"
)

var nameGen = rapid.StringMatching(`[A-Za-zÁÉÍÓÚáéíóúÑñüÜ' -]{0,12}`)

func TestProperty_ListAllSortedByCollation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := dogs.NewRegistry(memory.NewDogRepo(), dogs.WithSeed(false))
		ctx := context.Background()

		input := rapid.SliceOfN(nameGen, 0, 25).Draw(t, "names")
		for _, n := range input {
			if _, err := reg.Add(ctx, n, "breed"); err != nil {
				t.Fatalf("Add error: %v", err)
			}
		}

		items, err := reg.ListAll(ctx)
		if err != nil {
			t.Fatalf("ListAll error: %v", err)
		}
		if len(items) != len(input) {
			t.Fatalf("expected %d items, got %d", len(input), len(items))
		}

		c := collate.New(language.English)
		for i := 1; i < len(items); i++ {
			if c.CompareString(items[i-1].Name, items[i].Name) > 0 {
				t.Fatalf("not sorted at %d: %q > %q", i, items[i-1].Name, items[i].Name)
			}
		}
	})
}

func TestProperty_AddReturnsUniqueIDs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := dogs.NewRegistry(memory.NewDogRepo(), dogs.WithSeed(false))
		ctx := context.Background()

		n := rapid.IntRange(1, 50).Draw(t, "n")
		seen := make(map[string]struct{}, n)
		for i := 0; i < n; i++ {
			d, err := reg.Add(ctx, nameGen.Draw(t, "name"), nameGen.Draw(t, "breed"))
			if err != nil {
				t.Fatalf("Add error: %v", err)
			}
			if d.ID == "" {
				t.Fatalf("empty id")
			}
			if _, dup := seen[d.ID]; dup {
				t.Fatalf("duplicate id %s", d.ID)
			}
			seen[d.ID] = struct{}{}
		}
	})
}

func TestProperty_DeleteRemovesOnlyThatID(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := dogs.NewRegistry(memory.NewDogRepo(), dogs.WithSeed(false))
		ctx := context.Background()

		n := rapid.IntRange(1, 20).Draw(t, "n")
		created := make([]dogs.Dog, 0, n)
		for i := 0; i < n; i++ {
			d, err := reg.Add(ctx, nameGen.Draw(t, "name"), "breed")
			if err != nil {
				t.Fatalf("Add error: %v", err)
			}
			created = append(created, d)
		}

		victim := created[rapid.IntRange(0, n-1).Draw(t, "victim")]
		if err := reg.Delete(ctx, victim.ID); err != nil {
			t.Fatalf("Delete error: %v", err)
		}
		if err := reg.Delete(ctx, victim.ID); err != nil {
			t.Fatalf("second Delete error: %v", err)
		}

		items, err := reg.ListAll(ctx)
		if err != nil {
			t.Fatalf("ListAll error: %v", err)
		}
		if len(items) != n-1 {
			t.Fatalf("expected %d items, got %d", n-1, len(items))
		}
		for _, d := range items {
			if d.ID == victim.ID {
				t.Fatalf("deleted id %s still listed", victim.ID)
			}
		}
	})
}
