package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// FallbackBriefing replaces the generated analysis whenever the backend
// fails. It is the only briefing text a caller ever sees on error.
const FallbackBriefing = "죄송합니다. 현재 AI 분석 서버 연결이 지연되고 있습니다. 잠시 후 다시 시도해주세요."

const analystPrompt = `당신은 월가에서 20년 경력을 가진 유능한 '금융 애널리스트'입니다.
아래 데이터를 바탕으로 '%s' 종목의 현재 상황과 등락 원인을 분석해서 브리핑해주세요.

[시장 데이터]
- 현재가: %v
- 등락률: %v%%

[최신 뉴스 헤드라인]
%s
[작성 원칙]
1. **등락의 핵심 원인**을 뉴스에 기반하여 논리적으로 설명하세요.
2. 상승/하락 여부에 따라 긍정적/부정적 요인을 명확히 짚어주세요.
3. 단순한 뉴스 나열이 아니라, 투자자가 이해하기 쉬운 **'인사이트'**를 제공하세요.
4. 말투는 "~했습니다.", "~보입니다."와 같은 **전문적이고 정중한 '해요체'**를 사용하세요.
5. 분량은 반드시 **공백 포함 한글 350자 이상, 500자 이하**로 작성하세요.
6. 글의 시작을 "현재 %s의 주가는..." 으로 시작하지 마세요. 바로 핵심 분석으로 들어가세요.`

// Analyst composes market briefings from a quote and aggregated headlines.
type Analyst struct {
	generator Generator
}

func NewAnalyst(generator Generator) *Analyst {
	return &Analyst{generator: generator}
}

// Brief never fails. The length band and opening constraint in the prompt
// are instructions to the backend; the output is not validated or truncated
// here. Any backend error is logged and replaced with FallbackBriefing.
func (a *Analyst) Brief(ctx context.Context, ticker string, data MarketData, headlines []Headline) Briefing {
	prompt := buildPrompt(ticker, data, headlines)

	text, err := a.generator.Generate(ctx, prompt)
	if err != nil {
		slog.Error("briefing generation failed", "ticker", ticker, "error", err)
		return Briefing{Ticker: ticker, Text: FallbackBriefing}
	}

	return Briefing{Ticker: ticker, Text: text}
}

func buildPrompt(ticker string, data MarketData, headlines []Headline) string {
	var newsText strings.Builder
	for i, h := range headlines {
		fmt.Fprintf(&newsText, "%d. %s (%s)\n", i+1, h.Title, h.Source)
	}

	return fmt.Sprintf(analystPrompt, ticker, data.Price, data.ChangePercent, newsText.String(), ticker)
}
