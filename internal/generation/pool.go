package generation

import "transfit/workout-app/internal/domain"

// filterPool reduces the catalog snapshot to exercises the profile may be
// prescribed: equipment intersection, hard exclusions, critical blocks, and
// recovery-phase admission when a surgical history exists. The filter is a
// straight set intersection: order-independent and idempotent.
func filterPool(catalog []domain.Exercise, p *normalizedProfile, ctx *domain.SafetyContext) []domain.Exercise {
	pool := make([]domain.Exercise, 0, len(catalog))
	for i := range catalog {
		ex := &catalog[i]
		if !p.hasEquipment(ex.Equipment) {
			continue
		}
		if ctx.IsExcluded(ex.ID.Hex()) {
			continue
		}
		if blockedByCritical(ex, ctx.CriticalBlocks) {
			continue
		}
		if p.HasSurgeryHistory && !ex.AllowedInPhase(p.RecoveryPhase) {
			continue
		}
		pool = append(pool, *ex)
	}
	return pool
}

func blockedByCritical(ex *domain.Exercise, blocks []domain.CriticalBlock) bool {
	for _, b := range blocks {
		if b.Blocks(ex) {
			return true
		}
	}
	return false
}
