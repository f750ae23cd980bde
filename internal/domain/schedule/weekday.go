package schedule

// ===============================
// Weekday
// ===============================

// Weekday follows the persisted convention: 0 = Sunday ... 6 = Saturday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const DaysPerWeek = 7

var weekdayNames = [DaysPerWeek]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return weekdayNames[d]
}
