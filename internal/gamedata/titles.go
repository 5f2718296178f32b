package gamedata

// TitleBand describes one contiguous run of character levels sharing a title.
// Total IP grows linearly inside a band: BaseIP at FromLevel, plus IPPerLevel
// for every level gained past it. Entering a band grants a fixed jump over
// the previous band's last total, the jump is part of the table and not
// derivable from the rates.
type TitleBand struct {
	Title      int32
	FromLevel  int32
	ToLevel    int32
	BaseIP     int64
	IPPerLevel int64
}

// defaultTitleBands covers levels 1 through 220. The last band saturates:
// any level at or past its FromLevel maps to title 7.
var defaultTitleBands = []TitleBand{
	{Title: 1, FromLevel: 1, ToLevel: 14, BaseIP: 1500, IPPerLevel: 4000},
	{Title: 2, FromLevel: 15, ToLevel: 49, BaseIP: 57500, IPPerLevel: 20000},
	{Title: 3, FromLevel: 50, ToLevel: 99, BaseIP: 763500, IPPerLevel: 21200},
	{Title: 4, FromLevel: 100, ToLevel: 149, BaseIP: 1823500, IPPerLevel: 44820},
	{Title: 5, FromLevel: 150, ToLevel: 189, BaseIP: 4064500, IPPerLevel: 84500},
	{Title: 6, FromLevel: 190, ToLevel: 204, BaseIP: 7444500, IPPerLevel: 187000},
	{Title: 7, FromLevel: 205, ToLevel: 220, BaseIP: 10249500, IPPerLevel: 600000},
}
