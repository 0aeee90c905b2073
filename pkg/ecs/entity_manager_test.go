package ecs

import (
	"reflect"
	"testing"
)

// 测试用组件类型
type testPosition struct {
	X, Y float64
}

type testTag struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == 0 || id2 == 0 {
		t.Error("entity ID 0 is reserved as invalid")
	}
	if id1 == id2 {
		t.Errorf("entity IDs must be unique, got %d twice", id1)
	}
	if em.EntityCount() != 2 {
		t.Errorf("expected 2 entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPosition{X: 1, Y: 2})

	comp, ok := em.GetComponentByType(id, reflect.TypeOf(&testPosition{}))
	if !ok {
		t.Fatal("expected component to exist")
	}
	pos := comp.(*testPosition)
	if pos.X != 1 || pos.Y != 2 {
		t.Errorf("expected (1,2), got (%v,%v)", pos.X, pos.Y)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{X: 3})

	pos, ok := GetComponent[*testPosition](em, id)
	if !ok {
		t.Fatal("expected component to exist")
	}
	if pos.X != 3 {
		t.Errorf("expected X=3, got %v", pos.X)
	}

	// 未添加的组件类型
	if _, ok := GetComponent[*testTag](em, id); ok {
		t.Error("expected missing component lookup to fail")
	}
}

func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPosition{})

	em.DestroyEntity(id)

	// 标记后、清理前实体仍然存活
	if !em.HasComponent(id, reflect.TypeOf(&testPosition{})) {
		t.Error("entity should survive until RemoveMarkedEntities")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("entity should be marked for destroy")
	}

	em.RemoveMarkedEntities()

	if em.HasComponent(id, reflect.TypeOf(&testPosition{})) {
		t.Error("entity should be gone after RemoveMarkedEntities")
	}
	if em.EntityCount() != 0 {
		t.Errorf("expected 0 entities, got %d", em.EntityCount())
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 同一实体在一个 tick 内可能被多个系统标记
	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if em.EntityCount() != 0 {
		t.Errorf("expected 0 entities, got %d", em.EntityCount())
	}
}

func TestQueryOrderIsCreationOrder(t *testing.T) {
	em := NewEntityManager()

	var created []EntityID
	for i := 0; i < 10; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPosition{X: float64(i)})
		created = append(created, id)
	}

	got := GetEntitiesWith1[*testPosition](em)
	if len(got) != len(created) {
		t.Fatalf("expected %d entities, got %d", len(created), len(got))
	}
	for i := range created {
		if got[i] != created[i] {
			t.Fatalf("query order mismatch at %d: expected %d, got %d", i, created[i], got[i])
		}
	}
}

func TestQueryOrderSurvivesRemoval(t *testing.T) {
	em := NewEntityManager()

	var created []EntityID
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPosition{})
		created = append(created, id)
	}

	// 删除中间的实体，剩余实体必须保持原有相对顺序
	em.DestroyEntity(created[1])
	em.DestroyEntity(created[3])
	em.RemoveMarkedEntities()

	want := []EntityID{created[0], created[2], created[4]}
	got := GetEntitiesWith1[*testPosition](em)
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestGetEntitiesWithMultipleComponents(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &testPosition{})
	em.AddComponent(both, &testTag{Name: "both"})

	posOnly := em.CreateEntity()
	em.AddComponent(posOnly, &testPosition{})

	got := GetEntitiesWith2[*testPosition, *testTag](em)
	if len(got) != 1 || got[0] != both {
		t.Errorf("expected only entity %d, got %v", both, got)
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTag{Name: "x"})

	em.RemoveComponent(id, reflect.TypeOf(&testTag{}))

	if HasComponentOf[*testTag](em, id) {
		t.Error("component should be removed")
	}
}
