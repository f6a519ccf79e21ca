package taxonomy

// Skill is the top-level branch of the exam taxonomy.
type Skill string

const (
	SkillReading   Skill = "Reading"
	SkillListening Skill = "Listening"
	SkillWriting   Skill = "Writing"
	SkillSpeaking  Skill = "Speaking"
)

// Module is the exam track.
type Module string

const (
	ModuleAcademic        Module = "Academic"
	ModuleGeneralTraining Module = "General Training"
)

// Category is the coarse pedagogical grouping derived from an item type.
type Category string

const (
	CategorySelection  Category = "Selection-based"
	CategoryLogic      Category = "Logic-based"
	CategoryMatching   Category = "Matching-based"
	CategoryCompletion Category = "Completion-based"
	CategoryDirect     Category = "Direct Answer"
	CategoryWriting    Category = "Writing"
	CategorySpeaking   Category = "Speaking"
)

// Confidence grades how specific the matching rule was.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// ItemType is the exact exercise format.
type ItemType string

// Reading and shared item types.
const (
	TrueFalseNotGiven       ItemType = "True / False / Not Given"
	YesNoNotGiven           ItemType = "Yes / No / Not Given"
	MatchingHeadings        ItemType = "Matching Headings"
	MatchingInformation     ItemType = "Matching Information"
	MatchingFeatures        ItemType = "Matching Features"
	MatchingSentenceEndings ItemType = "Matching Sentence Endings"
	SentenceCompletion      ItemType = "Sentence Completion"
	SummaryCompletion       ItemType = "Summary Completion"
	NoteCompletion          ItemType = "Note Completion"
	TableCompletion         ItemType = "Table Completion"
	FlowChartCompletion     ItemType = "Flow-chart Completion"
	DiagramLabelCompletion  ItemType = "Diagram Label Completion"
	ShortAnswer             ItemType = "Short-answer Questions"
	MultipleChoice          ItemType = "Multiple Choice"
	MultipleChoiceMulti     ItemType = "Multiple Choice (Multiple Answers)"
	GeneralCompletion       ItemType = "Completion (General)"
)

// Listening-only item types.
const (
	FormCompletion ItemType = "Form Completion"
	MapLabelling   ItemType = "Plan/Map/Diagram Labelling"
	Matching       ItemType = "Matching"
)

// Writing item types.
const (
	Task1BarChart       ItemType = "Task 1 Academic: Bar Chart"
	Task1LineGraph      ItemType = "Task 1 Academic: Line Graph"
	Task1PieChart       ItemType = "Task 1 Academic: Pie Chart"
	Task1Table          ItemType = "Task 1 Academic: Table"
	Task1Process        ItemType = "Task 1 Academic: Process Diagram"
	Task1Map            ItemType = "Task 1 Academic: Map"
	Task1Mixed          ItemType = "Task 1 Academic: Mixed Charts"
	Task1FormalLetter   ItemType = "Task 1 General: Formal Letter"
	Task1InformalLetter ItemType = "Task 1 General: Informal Letter"
	Task2Opinion        ItemType = "Task 2: Opinion Essay"
	Task2Discussion     ItemType = "Task 2: Discussion Essay"
	Task2AdvDisadv      ItemType = "Task 2: Advantages-Disadvantages Essay"
	Task2ProblemSol     ItemType = "Task 2: Problem-Solution Essay"
	Task2Essay          ItemType = "Task 2: Essay"
)

// Speaking item types.
const (
	SpeakingPart1 ItemType = "Part 1: Introduction & Interview"
	SpeakingPart2 ItemType = "Part 2: Cue Card (Long Turn)"
	SpeakingPart3 ItemType = "Part 3: Two-way Discussion"
)

// StorageCode is the collapsed item-type enumeration used by persistence.
type StorageCode string

const (
	CodeMultipleChoice    StorageCode = "multiple_choice"
	CodeTrueFalseNotGiven StorageCode = "true_false_not_given"
	CodeYesNoNotGiven     StorageCode = "yes_no_not_given"
	CodeFillInBlank       StorageCode = "fill_in_blank"
	CodeMatching          StorageCode = "matching"
	CodeShortAnswer       StorageCode = "short_answer"
	CodeWritingTask1      StorageCode = "writing_task1"
	CodeWritingTask2      StorageCode = "writing_task2"
	CodeSpeakingPart1     StorageCode = "speaking_part1"
	CodeSpeakingPart2     StorageCode = "speaking_part2"
	CodeSpeakingPart3     StorageCode = "speaking_part3"
)

// ItemTypeInfo is one row of the item-type table.
type ItemTypeInfo struct {
	Type     ItemType
	Skills   []Skill
	Category Category
	Code     StorageCode
}
