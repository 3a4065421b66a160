// Package tui renders the terminal dashboard served over SSH.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hyperhub/internal/domain"
	"hyperhub/internal/provider"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	defaultWidth  = 80
	maxHeadlines  = 8
	loadTimeout   = 30 * time.Second
	ellipsis      = "…"
	headlineInset = 4
)

type QuoteGetter interface {
	GetQuote(ctx context.Context, id string) (*domain.Quote, error)
}

type NewsGetter interface {
	GetNews(ctx context.Context) domain.NewsFeed
}

type SentimentScorer interface {
	ScoreFeed(ctx context.Context, feed domain.NewsFeed) domain.SentimentResult
}

type Services struct {
	Quotes    QuoteGetter
	News      NewsGetter
	Sentiment SentimentScorer
	Username  string
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58D0C9"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B98A5"))
	upStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950"))
	downStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F85149"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F85149"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E7681"))
	sectionStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#30363D")).Padding(0, 1)
)

type dashboardMsg struct {
	quote     *domain.Quote
	quoteErr  error
	sentiment domain.SentimentResult
	news      domain.NewsFeed
	at        time.Time
}

type Model struct {
	svc     Services
	spinner spinner.Model

	width  int
	height int

	loading   bool
	quote     *domain.Quote
	quoteErr  error
	sentiment domain.SentimentResult
	headlines []domain.NewsItem
	loadedAt  time.Time
}

func NewModel(svc Services) *Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(titleStyle),
	)
	return &Model{svc: svc, spinner: s, width: defaultWidth, loading: true}
}

func (m *Model) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *Model) load() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		msg := dashboardMsg{at: time.Now()}
		msg.quote, msg.quoteErr = svc.Quotes.GetQuote(ctx, "")
		msg.news = svc.News.GetNews(ctx)
		msg.sentiment = svc.Sentiment.ScoreFeed(ctx, msg.news)
		return msg
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.load())
		}
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case dashboardMsg:
		m.loading = false
		m.quote = msg.quote
		m.quoteErr = msg.quoteErr
		m.sentiment = msg.sentiment
		m.headlines = msg.news.Items
		m.loadedAt = msg.at
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	header := "HyperHub"
	if m.svc.Username != "" {
		header += labelStyle.Render("  " + m.svc.Username)
	}
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if m.loading && m.loadedAt.IsZero() {
		b.WriteString(m.spinner.View() + " loading market data...\n")
		b.WriteString(m.help())
		return b.String()
	}

	b.WriteString(sectionStyle.Render(m.quoteView() + "\n" + m.sentimentView()))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Headlines"))
	b.WriteString("\n")
	b.WriteString(m.headlinesView())
	b.WriteString("\n")
	if m.loading {
		b.WriteString(m.spinner.View() + " refreshing...\n")
	} else {
		b.WriteString(labelStyle.Render("updated " + m.loadedAt.Format("15:04:05")))
		b.WriteString("\n")
	}
	b.WriteString(m.help())
	return b.String()
}

func (m *Model) quoteView() string {
	switch {
	case errors.Is(m.quoteErr, provider.ErrNoData):
		return errorStyle.Render("price: no data")
	case m.quoteErr != nil:
		return errorStyle.Render("price: fetch failed")
	case m.quote == nil:
		return labelStyle.Render("price: n/a")
	}

	name := domain.DefaultAssetID
	if m.quote.Symbol != nil {
		name = strings.ToUpper(*m.quote.Symbol)
	}
	line := fmt.Sprintf("%s %s", titleStyle.Render(name), money(m.quote.Price, 4))
	if c := m.quote.Change24h; c != nil {
		style := upStyle
		if *c < 0 {
			style = downStyle
		}
		line += " " + style.Render(fmt.Sprintf("%+.2f%%", *c))
	}
	return line + "\n" +
		labelStyle.Render("vol 24h ") + money(m.quote.Volume24h, 0) +
		labelStyle.Render("  mcap ") + money(m.quote.MarketCap, 0)
}

func (m *Model) sentimentView() string {
	s := m.sentiment
	return labelStyle.Render("sentiment ") +
		fmt.Sprintf("%d/100", s.Score) +
		labelStyle.Render(fmt.Sprintf("  +%d / -%d", s.PositiveHits, s.NegativeHits))
}

func (m *Model) headlinesView() string {
	if len(m.headlines) == 0 {
		return labelStyle.Render("  no headlines") + "\n"
	}
	var b strings.Builder
	for i, it := range m.headlines {
		if i == maxHeadlines {
			break
		}
		line := fmt.Sprintf("[%s] %s", it.Source, it.Title)
		b.WriteString("  " + Truncate(line, m.width-headlineInset) + "\n")
	}
	return b.String()
}

func (m *Model) help() string {
	return helpStyle.Render("r refresh • q quit")
}

// Truncate cuts s to at most width terminal cells, marking the cut with an
// ellipsis. Wide runes count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func money(v *float64, places int) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("$%.*f", places, *v)
}
