package ecs

import (
	"testing"
	"testing/quick"
)

// 随机批量创建/删除后，存活实体数必须与账面一致，
// 且查询结果不包含任何已删除的实体。
func TestQuickCreateDestroyInvariant(t *testing.T) {
	f := func(createCount uint8, destroyMask uint64) bool {
		em := NewEntityManager()

		n := int(createCount%64) + 1
		ids := make([]EntityID, 0, n)
		for i := 0; i < n; i++ {
			id := em.CreateEntity()
			em.AddComponent(id, &testPosition{X: float64(i)})
			ids = append(ids, id)
		}

		destroyed := make(map[EntityID]bool)
		for i, id := range ids {
			if destroyMask&(1<<uint(i)) != 0 {
				em.DestroyEntity(id)
				destroyed[id] = true
			}
		}
		em.RemoveMarkedEntities()

		if em.EntityCount() != n-len(destroyed) {
			return false
		}
		for _, id := range GetEntitiesWith1[*testPosition](em) {
			if destroyed[id] {
				return false
			}
		}
		return true
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}
