package planner

import (
	"encoding/json"
	"fmt"
)

// TripType - 여행 타입
type TripType string

const (
	TripCouple  TripType = "couple"
	TripFriends TripType = "friends"
	TripSolo    TripType = "solo"
	TripFamily  TripType = "family"
)

// Valid - 정의된 여행 타입인지 확인
func (t TripType) Valid() bool {
	switch t {
	case TripCouple, TripFriends, TripSolo, TripFamily:
		return true
	}
	return false
}

// Mood - 앨범 분위기
type Mood string

const (
	MoodRomantic  Mood = "romantic"
	MoodAdventure Mood = "adventure"
	MoodPeaceful  Mood = "peaceful"
	MoodFun       Mood = "fun"
	MoodEmotional Mood = "emotional"
	MoodNostalgic Mood = "nostalgic"
)

// Valid - 정의된 분위기인지 확인
func (m Mood) Valid() bool {
	switch m {
	case MoodRomantic, MoodAdventure, MoodPeaceful, MoodFun, MoodEmotional, MoodNostalgic:
		return true
	}
	return false
}

type BlockType string

const (
	BlockHero     BlockType = "hero"
	BlockImage    BlockType = "image"
	BlockTextSlot BlockType = "textSlot"
	BlockSpacer   BlockType = "spacer"
	BlockEnding   BlockType = "ending"
)

type ImageSize string

const (
	SizeFull   ImageSize = "full"
	SizeMedium ImageSize = "medium"
	SizeSmall  ImageSize = "small"
)

type SpacerHeight string

const (
	HeightSmall  SpacerHeight = "sm"
	HeightMedium SpacerHeight = "md"
	HeightLarge  SpacerHeight = "lg"
)

// AlbumBlock - 앨범 레이아웃을 구성하는 블록 하나
// HeroBlock, ImageBlock, TextSlotBlock, SpacerBlock, EndingBlock 중 하나
type AlbumBlock interface {
	BlockType() BlockType
}

// HeroBlock - 첫 번째 풀블리드 이미지
type HeroBlock struct {
	ImageIndex int `json:"imageIndex"`
}

// ImageBlock - 중간 이미지
type ImageBlock struct {
	ImageIndex int       `json:"imageIndex"`
	Size       ImageSize `json:"size"`
}

// TextSlotBlock - 사용자 한 줄 글 자리
type TextSlotBlock struct {
	SlotID string `json:"slotId"`
	Hint   string `json:"hint"`
}

// SpacerBlock - 여백
type SpacerBlock struct {
	Height SpacerHeight `json:"height"`
}

// EndingBlock - 마지막 이미지
type EndingBlock struct {
	ImageIndex  int    `json:"imageIndex"`
	ClosingHint string `json:"closingHint"`
}

func (HeroBlock) BlockType() BlockType     { return BlockHero }
func (ImageBlock) BlockType() BlockType    { return BlockImage }
func (TextSlotBlock) BlockType() BlockType { return BlockTextSlot }
func (SpacerBlock) BlockType() BlockType   { return BlockSpacer }
func (EndingBlock) BlockType() BlockType   { return BlockEnding }

func (b HeroBlock) MarshalJSON() ([]byte, error) {
	type fields HeroBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		fields
	}{BlockHero, fields(b)})
}

func (b ImageBlock) MarshalJSON() ([]byte, error) {
	type fields ImageBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		fields
	}{BlockImage, fields(b)})
}

func (b TextSlotBlock) MarshalJSON() ([]byte, error) {
	type fields TextSlotBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		fields
	}{BlockTextSlot, fields(b)})
}

func (b SpacerBlock) MarshalJSON() ([]byte, error) {
	type fields SpacerBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		fields
	}{BlockSpacer, fields(b)})
}

func (b EndingBlock) MarshalJSON() ([]byte, error) {
	type fields EndingBlock
	return json.Marshal(struct {
		Type BlockType `json:"type"`
		fields
	}{BlockEnding, fields(b)})
}

// EditPlan - 렌더링 순서대로 나열된 앨범 블록
type EditPlan []AlbumBlock

// UnmarshalJSON - "type" 필드를 보고 블록 타입별로 디코딩
func (p *EditPlan) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	if raws == nil {
		*p = nil
		return nil
	}

	blocks := make(EditPlan, 0, len(raws))
	for i, raw := range raws {
		block, err := decodeBlock(raw)
		if err != nil {
			return fmt.Errorf("editPlan[%d]: %w", i, err)
		}
		blocks = append(blocks, block)
	}
	*p = blocks
	return nil
}

// wireBlock - 모든 블록 필드의 합집합 (누락 여부 확인용 포인터)
type wireBlock struct {
	Type        BlockType    `json:"type"`
	ImageIndex  *int         `json:"imageIndex"`
	Size        ImageSize    `json:"size"`
	SlotID      string       `json:"slotId"`
	Hint        string       `json:"hint"`
	Height      SpacerHeight `json:"height"`
	ClosingHint string       `json:"closingHint"`
}

func decodeBlock(raw json.RawMessage) (AlbumBlock, error) {
	var w wireBlock
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}

	switch w.Type {
	case BlockHero:
		if w.ImageIndex == nil {
			return nil, fmt.Errorf("hero block missing imageIndex")
		}
		return HeroBlock{ImageIndex: *w.ImageIndex}, nil
	case BlockImage:
		if w.ImageIndex == nil {
			return nil, fmt.Errorf("image block missing imageIndex")
		}
		switch w.Size {
		case SizeFull, SizeMedium, SizeSmall:
		default:
			return nil, fmt.Errorf("image block has invalid size %q", w.Size)
		}
		return ImageBlock{ImageIndex: *w.ImageIndex, Size: w.Size}, nil
	case BlockTextSlot:
		if w.SlotID == "" {
			return nil, fmt.Errorf("textSlot block missing slotId")
		}
		return TextSlotBlock{SlotID: w.SlotID, Hint: w.Hint}, nil
	case BlockSpacer:
		switch w.Height {
		case HeightSmall, HeightMedium, HeightLarge:
		default:
			return nil, fmt.Errorf("spacer block has invalid height %q", w.Height)
		}
		return SpacerBlock{Height: w.Height}, nil
	case BlockEnding:
		if w.ImageIndex == nil {
			return nil, fmt.Errorf("ending block missing imageIndex")
		}
		return EndingBlock{ImageIndex: *w.ImageIndex, ClosingHint: w.ClosingHint}, nil
	}
	return nil, fmt.Errorf("unknown block type %q", w.Type)
}

// TextSlotDescriptor - 캡션 입력 자리 선언 (slotId는 TextSlotBlock과 1:1)
type TextSlotDescriptor struct {
	SlotID string `json:"slotId"`
	Hint   string `json:"hint"`
}

// PlanResult - 계획 생성 결과 (생성 후 변경하지 않음)
type PlanResult struct {
	Title     string               `json:"title"`
	EditPlan  EditPlan             `json:"editPlan"`
	TextSlots []TextSlotDescriptor `json:"textSlots"`
}

// PlanRequest - 계획 생성 입력 (호출자가 검증한 값)
type PlanRequest struct {
	ImageCount int
	TripType   TripType
	Moods      []Mood
	Title      string // 비어 있으면 자동 생성
	SessionID  string // AI 사용량 제한 키 (선택)
}
