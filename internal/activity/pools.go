package activity

var Activities = []string{
	"Code review and optimization",
	"Bug fixes and improvements",
	"Documentation updates",
	"Performance enhancements",
	"Feature implementation",
	"Testing and validation",
	"Code refactoring",
	"Security updates",
	"Dependency management",
	"Build system improvements",
}

var Quotes = []string{
	"The best way to predict the future is to implement it. - Alan Kay",
	"Code is like humor. When you have to explain it, it's bad. - Cory House",
	"First, solve the problem. Then, write the code. - John Johnson",
	"Any fool can write code that a computer can understand. Good programmers write code that humans can understand. - Martin Fowler",
	"The only way to learn a new programming language is by writing programs in it. - Dennis Ritchie",
	"Sometimes it pays to stay in bed on Monday, rather than spending the rest of the week debugging Monday's code. - Dan Salomon",
	"It's not a bug – it's an undocumented feature. - Anonymous",
	"The most damaging phrase in the language is 'We've always done it this way!' - Grace Hopper",
	"Programming isn't about what you know; it's about what you can figure out. - Chris Pine",
	"The best error message is the one that never shows up. - Thomas Fuchs",
	"Good code is its own best documentation. - Steve McConnell",
	"Make it work, make it right, make it fast. - Kent Beck",
	"Code never lies, comments sometimes do. - Ron Jeffries",
	"Simplicity is the ultimate sophistication. - Leonardo da Vinci",
	"The only constant in the technology industry is change. - Marc Benioff",
}

// Stat ranges, inclusive.
const (
	minLinesAdded   = 5
	maxLinesAdded   = 50
	minLinesRemoved = 1
	maxLinesRemoved = 20
	minFilesChanged = 1
	maxFilesChanged = 5
)
