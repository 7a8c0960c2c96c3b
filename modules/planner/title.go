package planner

import "strings"

// 여행 타입별 기본 제목 후보 (각 3개)
var tripTitles = map[TripType][]string{
	TripCouple:  {"우리의 순간들", "함께한 시간", "둘이서 걷는 길"},
	TripFriends: {"우정의 기록", "함께여서 좋았던", "친구들과의 하루"},
	TripSolo:    {"나만의 시간", "혼자 걷는 길", "오롯이 나"},
	TripFamily:  {"가족의 추억", "함께한 시간들", "우리 가족 이야기"},
}

// 첫 번째 분위기로 정해지는 제목 앞 수식어
var moodPrefixes = map[Mood]string{
	MoodRomantic:  "로맨틱한",
	MoodAdventure: "모험적인",
	MoodPeaceful:  "평화로운",
	MoodFun:       "신나는",
	MoodEmotional: "감성적인",
	MoodNostalgic: "추억의",
}

// DefaultTitle - 여행 타입/분위기로 기본 제목 생성
// intn(n)은 [0, n) 범위의 값을 돌려줘야 함
func DefaultTitle(tripType TripType, moods []Mood, intn func(n int) int) string {
	candidates := tripTitles[tripType]
	base := ""
	if len(candidates) > 0 {
		base = candidates[intn(len(candidates))]
	}

	if len(moods) == 0 {
		return base
	}
	return strings.TrimSpace(moodPrefixes[moods[0]] + " " + base)
}

// TitleCandidates - DefaultTitle이 돌려줄 수 있는 모든 제목
func TitleCandidates(tripType TripType, moods []Mood) []string {
	out := make([]string, 0, len(tripTitles[tripType]))
	for i := range tripTitles[tripType] {
		out = append(out, DefaultTitle(tripType, moods, func(int) int { return i }))
	}
	return out
}
