package planner

import (
	"errors"
	"fmt"
)

// CheckPlan - 계획의 구조 규칙 검증
//   - hero가 첫 블록이고 imageIndex 0
//   - imageCount >= 2면 ending이 마지막 블록이고 imageIndex imageCount-1
//   - hero/image/ending의 imageIndex가 0..imageCount-1을 정확히 한 번씩 사용
//   - image 블록은 오름차순
//   - textSlots와 textSlot 블록의 slotId가 1:1
//
// 위반 사항을 모두 모아 하나의 에러로 돌려줌
func CheckPlan(result PlanResult, imageCount int) error {
	var errs []error
	plan := result.EditPlan

	if len(plan) == 0 {
		return errors.New("editPlan is empty")
	}

	if hero, ok := plan[0].(HeroBlock); !ok || hero.ImageIndex != 0 {
		errs = append(errs, errors.New("first block must be hero with imageIndex 0"))
	}

	last, lastIsEnding := plan[len(plan)-1].(EndingBlock)
	switch {
	case imageCount >= 2 && !lastIsEnding:
		errs = append(errs, errors.New("last block must be ending"))
	case imageCount >= 2 && last.ImageIndex != imageCount-1:
		errs = append(errs, fmt.Errorf("ending must reference image %d, got %d", imageCount-1, last.ImageIndex))
	}

	seen := make(map[int]int, imageCount)
	blockSlots := make(map[string]int)
	heroes, endings, lastImage := 0, 0, 0
	for i, block := range plan {
		switch b := block.(type) {
		case HeroBlock:
			heroes++
			seen[b.ImageIndex]++
		case ImageBlock:
			if b.ImageIndex <= lastImage {
				errs = append(errs, fmt.Errorf("block %d: image %d out of order", i, b.ImageIndex))
			}
			lastImage = b.ImageIndex
			seen[b.ImageIndex]++
		case EndingBlock:
			endings++
			if i != len(plan)-1 {
				errs = append(errs, fmt.Errorf("block %d: ending is not last", i))
			}
			seen[b.ImageIndex]++
		case TextSlotBlock:
			blockSlots[b.SlotID]++
		}
	}

	if heroes != 1 {
		errs = append(errs, fmt.Errorf("expected exactly one hero, got %d", heroes))
	}
	if endings > 1 || (imageCount < 2 && endings != 0) {
		errs = append(errs, fmt.Errorf("unexpected ending count %d for %d images", endings, imageCount))
	}

	for idx := 0; idx < imageCount; idx++ {
		if seen[idx] != 1 {
			errs = append(errs, fmt.Errorf("image %d used %d times", idx, seen[idx]))
		}
		delete(seen, idx)
	}
	for idx, n := range seen {
		errs = append(errs, fmt.Errorf("image %d out of range (used %d times)", idx, n))
	}

	declared := make(map[string]int, len(result.TextSlots))
	for _, slot := range result.TextSlots {
		declared[slot.SlotID]++
	}
	for id, n := range blockSlots {
		if n != 1 {
			errs = append(errs, fmt.Errorf("slot %q appears %d times in editPlan", id, n))
		}
		if declared[id] != 1 {
			errs = append(errs, fmt.Errorf("slot %q declared %d times in textSlots", id, declared[id]))
		}
	}
	for id := range declared {
		if blockSlots[id] == 0 {
			errs = append(errs, fmt.Errorf("slot %q has no textSlot block", id))
		}
	}

	return errors.Join(errs...)
}

// CheckIndices - 최소 형태 검증 (블록이 있고 이미지 인덱스가 범위 안)
// AI 응답과 저장 요청에 쓰임
func CheckIndices(plan EditPlan, imageCount int) error {
	if len(plan) == 0 {
		return errors.New("editPlan is empty")
	}

	for i, block := range plan {
		idx := -1
		switch b := block.(type) {
		case HeroBlock:
			idx = b.ImageIndex
		case ImageBlock:
			idx = b.ImageIndex
		case EndingBlock:
			idx = b.ImageIndex
		default:
			continue
		}
		if idx < 0 || idx >= imageCount {
			return fmt.Errorf("block %d references image %d outside [0,%d)", i, idx, imageCount)
		}
	}
	return nil
}
