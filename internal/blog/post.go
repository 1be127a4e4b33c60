package blog

import "time"

type Post struct {
	Title          string `json:"title"`
	Link           string `json:"link"`
	PubDate        string `json:"pubDate"`
	Content        string `json:"content,omitempty"`
	ContentSnippet string `json:"contentSnippet,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}

type FeedResponse struct {
	Success bool   `json:"success"`
	Posts   []Post `json:"posts"`
	Error   string `json:"error,omitempty"`
}

// fallbackPosts is shown when no blog is configured or the feed is down.
func fallbackPosts(now time.Time) []Post {
	day := 24 * time.Hour

	return []Post{
		{
			Title:          "호텔 숙박 시 알아두면 좋은 팁 10가지",
			Link:           "#",
			PubDate:        now.UTC().Format(time.RFC3339),
			ContentSnippet: "호텔 투숙 시 체크인부터 체크아웃까지 유용한 정보를 알려드립니다. 더 나은 숙박 경험을 위한 꿀팁을 확인하세요.",
		},
		{
			Title:          "서울 강남 맛집 추천: 호텔 근처 레스토랑",
			Link:           "#",
			PubDate:        now.Add(-day).UTC().Format(time.RFC3339),
			ContentSnippet: "호텔 근처에서 즐길 수 있는 맛집을 소개합니다. 한식부터 양식까지 다양한 선택지를 확인해보세요.",
		},
		{
			Title:          "비즈니스 출장객을 위한 호텔 서비스 안내",
			Link:           "#",
			PubDate:        now.Add(-2 * day).UTC().Format(time.RFC3339),
			ContentSnippet: "비즈니스 출장 시 필요한 호텔 서비스를 안내합니다. 미팅룸, 비즈니스 센터 등 다양한 편의시설을 이용하세요.",
		},
		{
			Title:          "가족 여행객을 위한 패밀리 객실 소개",
			Link:           "#",
			PubDate:        now.Add(-3 * day).UTC().Format(time.RFC3339),
			ContentSnippet: "가족 단위 투숙객을 위한 넓은 패밀리 객실을 소개합니다. 아이들과 함께하는 편안한 여행을 계획해보세요.",
		},
		{
			Title:          "호텔 로얄 스위트룸 투숙 후기",
			Link:           "#",
			PubDate:        now.Add(-4 * day).UTC().Format(time.RFC3339),
			ContentSnippet: "최고급 로얄 스위트룸의 실제 투숙 경험을 공유합니다. 럭셔리한 공간과 서비스를 만나보세요.",
		},
	}
}

func limitPosts(posts []Post, limit int) []Post {
	if limit < len(posts) {
		return posts[:limit]
	}

	return posts
}
