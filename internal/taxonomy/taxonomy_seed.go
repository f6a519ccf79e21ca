package taxonomy

var (
	readingOnly      = []Skill{SkillReading}
	listeningOnly    = []Skill{SkillListening}
	readingListening = []Skill{SkillReading, SkillListening}
	writingOnly      = []Skill{SkillWriting}
	speakingOnly     = []Skill{SkillSpeaking}
)

// seedItemTypes is the closed item-type taxonomy, grouped by skill.
// The category and storage code of every item type are fixed here and
// nowhere else.
var seedItemTypes = []ItemTypeInfo{
	// Reading (16, three shared with Listening)
	{Type: TrueFalseNotGiven, Skills: readingOnly, Category: CategoryLogic, Code: CodeTrueFalseNotGiven},
	{Type: YesNoNotGiven, Skills: readingOnly, Category: CategoryLogic, Code: CodeYesNoNotGiven},
	{Type: MatchingHeadings, Skills: readingOnly, Category: CategoryMatching, Code: CodeMatching},
	{Type: MatchingInformation, Skills: readingOnly, Category: CategoryMatching, Code: CodeMatching},
	{Type: MatchingFeatures, Skills: readingOnly, Category: CategoryMatching, Code: CodeMatching},
	{Type: MatchingSentenceEndings, Skills: readingOnly, Category: CategoryMatching, Code: CodeMatching},
	{Type: SentenceCompletion, Skills: readingListening, Category: CategoryCompletion, Code: CodeFillInBlank},
	{Type: SummaryCompletion, Skills: readingOnly, Category: CategoryCompletion, Code: CodeFillInBlank},
	{Type: NoteCompletion, Skills: readingListening, Category: CategoryCompletion, Code: CodeFillInBlank},
	{Type: TableCompletion, Skills: readingOnly, Category: CategoryCompletion, Code: CodeFillInBlank},
	{Type: FlowChartCompletion, Skills: readingOnly, Category: CategoryCompletion, Code: CodeFillInBlank},
	{Type: DiagramLabelCompletion, Skills: readingOnly, Category: CategoryCompletion, Code: CodeFillInBlank},
	{Type: ShortAnswer, Skills: readingOnly, Category: CategoryDirect, Code: CodeShortAnswer},
	{Type: MultipleChoice, Skills: readingListening, Category: CategorySelection, Code: CodeMultipleChoice},
	{Type: MultipleChoiceMulti, Skills: readingOnly, Category: CategorySelection, Code: CodeMultipleChoice},
	{Type: GeneralCompletion, Skills: readingOnly, Category: CategoryCompletion, Code: CodeFillInBlank},

	// Listening (3)
	{Type: FormCompletion, Skills: listeningOnly, Category: CategoryCompletion, Code: CodeFillInBlank},
	{Type: MapLabelling, Skills: listeningOnly, Category: CategoryMatching, Code: CodeMatching},
	{Type: Matching, Skills: listeningOnly, Category: CategoryMatching, Code: CodeMatching},

	// Writing (14)
	{Type: Task1BarChart, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask1},
	{Type: Task1LineGraph, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask1},
	{Type: Task1PieChart, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask1},
	{Type: Task1Table, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask1},
	{Type: Task1Process, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask1},
	{Type: Task1Map, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask1},
	{Type: Task1Mixed, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask1},
	{Type: Task1FormalLetter, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask1},
	{Type: Task1InformalLetter, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask1},
	{Type: Task2Opinion, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask2},
	{Type: Task2Discussion, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask2},
	{Type: Task2AdvDisadv, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask2},
	{Type: Task2ProblemSol, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask2},
	{Type: Task2Essay, Skills: writingOnly, Category: CategoryWriting, Code: CodeWritingTask2},

	// Speaking (3)
	{Type: SpeakingPart1, Skills: speakingOnly, Category: CategorySpeaking, Code: CodeSpeakingPart1},
	{Type: SpeakingPart2, Skills: speakingOnly, Category: CategorySpeaking, Code: CodeSpeakingPart2},
	{Type: SpeakingPart3, Skills: speakingOnly, Category: CategorySpeaking, Code: CodeSpeakingPart3},
}

// defaultModules maps each skill to its module when content carries no
// explicit track marker.
var defaultModules = map[Skill]Module{
	SkillReading:   ModuleAcademic,
	SkillListening: ModuleAcademic,
	SkillWriting:   ModuleAcademic,
	SkillSpeaking:  ModuleAcademic,
}

// categoryOrder fixes the display order of categories in the hierarchy.
var categoryOrder = []Category{
	CategorySelection,
	CategoryLogic,
	CategoryMatching,
	CategoryCompletion,
	CategoryDirect,
	CategoryWriting,
	CategorySpeaking,
}
