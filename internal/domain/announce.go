package domain

// AnnounceType is the declared game type for a round.
type AnnounceType string

const (
	AnnounceClubs    AnnounceType = "clubs"
	AnnounceSpades   AnnounceType = "spades"
	AnnounceHearts   AnnounceType = "hearts"
	AnnounceDiamonds AnnounceType = "diamonds"
	AnnounceGrand    AnnounceType = "grand"
	AnnounceNull     AnnounceType = "null"
)

// AnnounceBaseValues maps each game type to its base game value.
var AnnounceBaseValues = map[AnnounceType]int{
	AnnounceClubs:    12,
	AnnounceSpades:   11,
	AnnounceHearts:   10,
	AnnounceDiamonds: 9,
	AnnounceGrand:    24,
	AnnounceNull:     23,
}

// AvailableAnnounces lists the game types a declarer may choose from.
func AvailableAnnounces() []AnnounceType {
	return []AnnounceType{
		AnnounceClubs,
		AnnounceSpades,
		AnnounceHearts,
		AnnounceDiamonds,
		AnnounceGrand,
		AnnounceNull,
	}
}

// Multiplier is the game difficulty multiplier.
type Multiplier int

const (
	MultiplierGame Multiplier = iota + 1
	MultiplierSchneider
	MultiplierSchwarz
	MultiplierSchneiderDeclared
	MultiplierSchwarzDeclared
	MultiplierOuvert
)

// Announce tracks the declared game type and its multiplier for one round.
// Only the floor multiplier is reached in play.
type Announce struct {
	Type       AnnounceType
	Multiplier Multiplier
}

// NewAnnounce returns an undeclared announce with the floor multiplier.
func NewAnnounce() *Announce {
	return &Announce{Multiplier: MultiplierGame}
}

// Set records the declared game type.
func (a *Announce) Set(t AnnounceType) {
	a.Type = t
}
