package extract

// nicknamePairs is inserted into the lookup table in order. The source
// register listed RICHARD twice; the later entry wins, so RICHARD maps to
// RICK only while both DICK and RICK still map back to RICHARD. That
// asymmetry is observed behavior and is kept as-is.
var nicknamePairs = [][2]string{
	{"WILLIAM", "BILL"}, {"BILL", "WILLIAM"},
	{"ROBERT", "BOB"}, {"BOB", "ROBERT"},
	{"RICHARD", "DICK"}, {"DICK", "RICHARD"},
	{"RICHARD", "RICK"}, {"RICK", "RICHARD"},
	{"JAMES", "JIM"}, {"JIM", "JAMES"},
	{"JOHN", "JACK"}, {"JACK", "JOHN"},
	{"MICHAEL", "MIKE"}, {"MIKE", "MICHAEL"},
	{"THOMAS", "TOM"}, {"TOM", "THOMAS"},
	{"CHARLES", "CHARLIE"}, {"CHARLIE", "CHARLES"},
	{"EDWARD", "TED"}, {"TED", "EDWARD"},
	{"DONALD", "DON"}, {"DON", "DONALD"},
	{"KENNETH", "KEN"}, {"KEN", "KENNETH"},
	{"RONALD", "RON"}, {"RON", "RONALD"},
	{"ANTHONY", "TONY"}, {"TONY", "ANTHONY"},
	{"DANIEL", "DAN"}, {"DAN", "DANIEL"},
	{"JOSEPH", "JOE"}, {"JOE", "JOSEPH"},
	{"SAMUEL", "SAM"}, {"SAM", "SAMUEL"},
	{"BENJAMIN", "BEN"}, {"BEN", "BENJAMIN"},
	{"ALEXANDER", "ALEX"}, {"ALEX", "ALEXANDER"},
	{"FREDERICK", "FRED"}, {"FRED", "FREDERICK"},
	{"LAWRENCE", "LARRY"}, {"LARRY", "LAWRENCE"},
	{"GERALD", "GERRY"}, {"GERRY", "GERALD"},
	{"RAYMOND", "RAY"}, {"RAY", "RAYMOND"},
	{"ALBERT", "AL"}, {"AL", "ALBERT"},
	{"PETER", "PETE"}, {"PETE", "PETER"},
	{"DAVID", "DAVE"}, {"DAVE", "DAVID"},
	{"STEPHEN", "STEVE"}, {"STEVE", "STEPHEN"},
	{"ANDREW", "ANDY"}, {"ANDY", "ANDREW"},
	{"CHRISTOPHER", "CHRIS"}, {"CHRIS", "CHRISTOPHER"},
	{"NICHOLAS", "NICK"}, {"NICK", "NICHOLAS"},
	{"MARGARET", "PEG"}, {"PEG", "MARGARET"},
	{"ELIZABETH", "LIZ"}, {"LIZ", "ELIZABETH"},
	{"KATHERINE", "KATE"}, {"KATE", "KATHERINE"},
	{"PATRICIA", "PAT"}, {"PAT", "PATRICIA"},
}

var nicknames = func() map[string]string {
	m := make(map[string]string, len(nicknamePairs))
	for _, p := range nicknamePairs {
		m[p[0]] = p[1]
	}
	return m
}()

// Nickname returns the recorded variant for a first name, if any. The table
// is immutable and shared.
func Nickname(name string) (string, bool) {
	alt, ok := nicknames[name]
	return alt, ok
}
