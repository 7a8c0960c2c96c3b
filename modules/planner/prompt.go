package planner

import (
	"fmt"
	"strings"
)

// BuildPlanPrompt - 앨범 레이아웃 설계 요청 프롬프트
func BuildPlanPrompt(req PlanRequest) string {
	titleLine := "- 제목 없음 (제안 필요)"
	if req.Title != "" {
		titleLine = "- 사용자 제목: " + req.Title
	}

	return fmt.Sprintf(`당신은 사진 에디터입니다. 여행 앨범의 레이아웃을 설계해주세요.

입력 정보:
- 사진 수: %d장
- 여행 타입: %s
- 분위기: %s
%s

다음 JSON 형식으로 응답해주세요:
{
  "title": "앨범 제목 (사용자 제목이 있으면 그대로, 없으면 여행 타입과 분위기에 맞는 감성적인 제목)",
  "editPlan": [ 앨범 블록 배열 ],
  "textSlots": [ { "slotId": "고유ID", "hint": "이 자리에 어울리는 한 줄 일기 힌트" } ]
}

블록 타입:
1. hero: 첫 번째 풀블리드 이미지 {"type": "hero", "imageIndex": 0}
2. image: 일반 이미지 {"type": "image", "imageIndex": 번호, "size": "full"|"medium"|"small"}
3. textSlot: 텍스트 자리 {"type": "textSlot", "slotId": "고유ID", "hint": "힌트"}
4. spacer: 여백 {"type": "spacer", "height": "sm"|"md"|"lg"}
5. ending: 마지막 이미지 {"type": "ending", "imageIndex": %d, "closingHint": "마무리 문구 힌트"}

규칙:
- hero는 항상 첫 번째 블록 (imageIndex: 0)
- ending은 항상 마지막 블록이고 마지막 사진(imageIndex: %d)을 사용
- 사진 사이에 spacer나 textSlot을 적절히 배치
- textSlot은 2~4개 (사진 수에 따라), textSlots 배열과 slotId가 1:1로 일치
- 모든 사진을 순서대로 정확히 한 번씩 사용
- 중간 이미지 size는 다양하게 섞기 (리듬감)

설명 없이 JSON 객체 하나만 응답하세요.`,
		req.ImageCount, req.TripType, joinMoods(req.Moods), titleLine,
		req.ImageCount-1, req.ImageCount-1)
}

// BuildTitlePrompt - 제목 하나만 제안받는 프롬프트
func BuildTitlePrompt(tripType TripType, moods []Mood) string {
	return fmt.Sprintf(`여행 앨범 제목을 하나만 제안해주세요.
여행 타입: %s
분위기: %s

감성적이고 간결한 한국어 제목만 응답해주세요. 따옴표나 설명 없이 제목만.`,
		tripType, joinMoods(moods))
}

func joinMoods(moods []Mood) string {
	parts := make([]string, len(moods))
	for i, m := range moods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}
