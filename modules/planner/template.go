package planner

import "math/rand"

const (
	SlotIntro   = "intro"
	SlotMiddle  = "middle"
	SlotClosing = "closing"

	introHint         = "여행의 시작, 어떤 마음이었나요?"
	middleHint        = "가장 기억에 남는 순간은?"
	closingHint       = "이 여행이 남긴 것은?"
	endingClosingHint = "다음 여행을 기약하며"
)

// 중간 이미지 크기 순환 (리듬감)
var imageSizeCycle = [...]ImageSize{SizeFull, SizeMedium, SizeSmall}

// Planner - 외부 의존성 없는 결정론적 레이아웃 생성기
type Planner struct {
	intn func(n int) int
}

// NewPlanner - intn이 nil이면 math/rand 전역 소스 사용
func NewPlanner(intn func(n int) int) *Planner {
	if intn == nil {
		intn = rand.Intn
	}
	return &Planner{intn: intn}
}

// Plan - 이미지 수/여행 타입/분위기로 앨범 계획 생성 (실패하지 않음)
// ImageCount 1~10, Moods 1~2개는 호출자가 검증
func (p *Planner) Plan(req PlanRequest) PlanResult {
	title := req.Title
	if title == "" {
		title = DefaultTitle(req.TripType, req.Moods, p.intn)
	}

	b := &planBuilder{}

	// Hero (첫 번째 이미지)
	b.block(HeroBlock{ImageIndex: 0})
	b.spacer(HeightLarge)

	b.slot(SlotIntro, introHint)
	b.spacer(HeightMedium)

	// hero와 ending을 제외한 중간 이미지
	middleImages := req.ImageCount - 2
	for i := 1; i <= middleImages; i++ {
		b.block(ImageBlock{ImageIndex: i, Size: imageSizeCycle[(i-1)%len(imageSizeCycle)]})

		if i == middleImages/2 && middleImages >= 3 {
			b.spacer(HeightMedium)
			b.slot(SlotMiddle, middleHint)
			b.spacer(HeightMedium)
		} else if i%2 == 0 {
			b.spacer(HeightLarge)
		} else {
			b.spacer(HeightMedium)
		}
	}

	// closing 슬롯은 3장부터, ending 블록은 2장부터
	if req.ImageCount >= 3 {
		b.slot(SlotClosing, closingHint)
		b.spacer(HeightLarge)
	}

	if req.ImageCount >= 2 {
		b.block(EndingBlock{ImageIndex: req.ImageCount - 1, ClosingHint: endingClosingHint})
	}

	return PlanResult{
		Title:     title,
		EditPlan:  b.blocks,
		TextSlots: b.slots,
	}
}

type planBuilder struct {
	blocks EditPlan
	slots  []TextSlotDescriptor
}

func (b *planBuilder) block(block AlbumBlock) {
	b.blocks = append(b.blocks, block)
}

func (b *planBuilder) spacer(height SpacerHeight) {
	b.block(SpacerBlock{Height: height})
}

// slot - textSlots와 블록 목록에 같은 슬롯을 함께 추가
func (b *planBuilder) slot(id, hint string) {
	b.slots = append(b.slots, TextSlotDescriptor{SlotID: id, Hint: hint})
	b.block(TextSlotBlock{SlotID: id, Hint: hint})
}
