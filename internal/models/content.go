package models

// Verse is one verse of a translation, numbered within its surah.
type Verse struct {
	Number int    `json:"number" msgpack:"n"`
	Text   string `json:"text" msgpack:"t"`
}

type SurahSection struct {
	SurahNumber int     `json:"surahNumber" msgpack:"s"`
	SurahName   string  `json:"surahName" msgpack:"sn"`
	Verses      []Verse `json:"verses" msgpack:"v"`
}

// ContentUnit is one unit (juz) of reading, grouped by surah in reading order.
type ContentUnit struct {
	Number      int            `json:"juzNumber" msgpack:"j"`
	Edition     string         `json:"edition" msgpack:"e"`
	Sections    []SurahSection `json:"sections" msgpack:"sec"`
	TotalVerses int            `json:"totalVerses" msgpack:"tv"`
}

// DayContent is everything assigned to one campaign day.
type DayContent struct {
	Day   int           `json:"day"`
	Units []ContentUnit `json:"units"`
}
