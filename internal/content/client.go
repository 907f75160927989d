package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/gofiber/fiber/v2"
)

const DefaultTimeout = 15 * time.Second

// Client fetches translated units from an alquran.cloud compatible API.
type Client struct {
	baseURL string
	edition string
	timeout time.Duration
}

func NewClient(baseURL, edition string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		edition: edition,
		timeout: DefaultTimeout,
	}
}

type juzResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Number int        `json:"number"`
		Ayahs  []ayahJSON `json:"ayahs"`
	} `json:"data"`
}

type ayahJSON struct {
	Text          string `json:"text"`
	NumberInSurah int    `json:"numberInSurah"`
	Surah         struct {
		Number      int    `json:"number"`
		EnglishName string `json:"englishName"`
	} `json:"surah"`
}

func (c *Client) FetchUnit(ctx context.Context, number int) (*models.ContentUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}

	url := fmt.Sprintf("%s/juz/%d/%s", c.baseURL, number, c.edition)
	code, body, errs := fiber.Get(url).Timeout(timeout).Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("content api responded %d", code)
	}

	var resp juzResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode content unit %d: %w", number, err)
	}
	if len(resp.Data.Ayahs) == 0 {
		return nil, fmt.Errorf("content unit %d is empty", number)
	}
	return groupBySurah(number, c.edition, resp.Data.Ayahs), nil
}

// groupBySurah keeps surahs in order of first appearance.
func groupBySurah(number int, edition string, ayahs []ayahJSON) *models.ContentUnit {
	unit := &models.ContentUnit{Number: number, Edition: edition, TotalVerses: len(ayahs)}
	index := make(map[int]int)
	for _, a := range ayahs {
		i, ok := index[a.Surah.Number]
		if !ok {
			i = len(unit.Sections)
			index[a.Surah.Number] = i
			unit.Sections = append(unit.Sections, models.SurahSection{
				SurahNumber: a.Surah.Number,
				SurahName:   SurahName(a.Surah.Number, a.Surah.EnglishName),
			})
		}
		unit.Sections[i].Verses = append(unit.Sections[i].Verses, models.Verse{
			Number: a.NumberInSurah,
			Text:   a.Text,
		})
	}
	return unit
}
