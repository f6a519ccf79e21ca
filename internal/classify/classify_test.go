package classify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

func TestClassify_EmptyInput(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t\n"} {
		_, err := Classify(content)
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Classify(%q) err = %v, want ErrEmptyInput", content, err)
		}
	}
}

func TestClassify_CueCardScenario(t *testing.T) {
	content := "You should say:\n- what it is\n- where you found it\nand explain why it matters."
	r, err := Classify(content)
	require.NoError(t, err)

	assert.Equal(t, taxonomy.SkillSpeaking, r.Skill)
	assert.Equal(t, taxonomy.SpeakingPart2, r.ItemType)
	assert.Equal(t, taxonomy.CategorySpeaking, r.Category)
	assert.Equal(t, taxonomy.ConfidenceHigh, r.Confidence)
	assert.False(t, r.NeedsReview())
}

func TestClassify_TrueFalseScenario(t *testing.T) {
	content := "Do the following statements agree with the information in the passage? TRUE FALSE NOT GIVEN\n1. The bridge was built in 1990."
	r, err := Classify(content)
	require.NoError(t, err)

	assert.Equal(t, taxonomy.SkillReading, r.Skill)
	assert.Equal(t, taxonomy.TrueFalseNotGiven, r.ItemType)
	assert.Equal(t, taxonomy.CategoryLogic, r.Category)
	assert.Equal(t, taxonomy.ModuleAcademic, r.Module)
	assert.Equal(t, "true-false-not-given", r.Rule)
}

func TestClassify_WritingBeatsSpeaking(t *testing.T) {
	// "talk about" and "part 2" are speaking indicators; "essay" is a writing one.
	content := "Part 2. Write an essay. Talk about the causes of pollution."
	r, err := Classify(content)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.SkillWriting, r.Skill)
}

func TestClassify_SpeakingBeatsListening(t *testing.T) {
	r, err := Classify("Describe a recording you listened to recently. You should say when you heard it.")
	require.NoError(t, err)
	assert.Equal(t, taxonomy.SkillSpeaking, r.Skill)
}

func TestClassify_FallbackIsLowConfidence(t *testing.T) {
	r, err := Classify("The history of glass making spans several thousand years.")
	require.NoError(t, err)

	assert.Equal(t, taxonomy.SkillReading, r.Skill)
	assert.Equal(t, taxonomy.MultipleChoice, r.ItemType)
	assert.Equal(t, taxonomy.ConfidenceLow, r.Confidence)
	assert.Equal(t, taxonomy.ConfidenceMedium, r.SkillConfidence)
	assert.Contains(t, r.Reason, "Please review")
	assert.True(t, r.NeedsReview())
	assert.Equal(t, "fallback", r.Rule)
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []string{
		"Complete the table below. Write NO MORE THAN TWO WORDS.",
		"You will hear a conversation. Choose the correct letter, A, B or C.",
		"Some people think that university should be free. To what extent do you agree?",
		"random text",
	}
	for _, content := range inputs {
		first, err := Classify(content)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Classify(content)
			require.NoError(t, err)
			assert.Equal(t, *first, *again)
		}
	}
}

func TestClassify_ConcurrentCalls(t *testing.T) {
	inputs := []string{
		"Do the following statements agree with the information? TRUE FALSE NOT GIVEN\n1. The bridge was built in 1990.",
		"You should say:\n- what it is\n- where you found it",
		"Write a letter to your friend. Dear Sam,",
		"Listen and complete the notes below.",
		"random text",
	}
	want := make([]Result, len(inputs))
	for i, content := range inputs {
		r, err := Classify(content)
		require.NoError(t, err)
		want[i] = *r
	}

	for w := 0; w < 8; w++ {
		t.Run(fmt.Sprintf("worker-%d", w), func(t *testing.T) {
			t.Parallel()
			for n := 0; n < 50; n++ {
				i := (w + n) % len(inputs)
				got, err := Classify(inputs[i])
				require.NoError(t, err)
				assert.Equal(t, want[i], *got)
			}
		})
	}
}

func TestClassify_CategoryAlwaysFromTable(t *testing.T) {
	inputs := []string{
		"Choose TWO letters, A-E.",
		"Answer the questions below.",
		"Label the diagram below.",
		"The bar chart below shows sales. Summarise the information.",
		"Part 3: let's talk about technology.",
		"Listen and complete the form below.",
		"Which paragraph contains the following information?",
		"nothing recognisable",
	}
	for _, content := range inputs {
		r, err := Classify(content)
		require.NoError(t, err)
		assert.Equal(t, taxonomy.CategoryOf(r.ItemType), r.Category, "content %q", content)
		assert.NotEmpty(t, r.Category, "content %q", content)
	}
}

func TestClassify_SectionPath(t *testing.T) {
	r := &Result{
		Skill:    taxonomy.SkillReading,
		Category: taxonomy.CategoryMatching,
		ItemType: taxonomy.MatchingHeadings,
	}
	assert.Equal(t, "Reading → Matching-based → Matching Headings", r.SectionPath())
}

func TestClassifySkill(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		want     taxonomy.Skill
		wantConf taxonomy.Confidence
	}{
		{"writing task", "Write at least 250 words.", taxonomy.SkillWriting, taxonomy.ConfidenceHigh},
		{"speaking cue card", "CUE CARD: describe a mentor", taxonomy.SkillSpeaking, taxonomy.ConfidenceHigh},
		{"listening section", "SECTION 1 Questions 1-10", taxonomy.SkillListening, taxonomy.ConfidenceHigh},
		{"reading default", "Read the passage and answer.", taxonomy.SkillReading, taxonomy.ConfidenceMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, conf := ClassifySkill(tt.content)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantConf, conf)
		})
	}
}

func TestClassifyType_Writing(t *testing.T) {
	tests := []struct {
		content string
		want    taxonomy.ItemType
		conf    taxonomy.Confidence
	}{
		{"The bar chart below shows car sales.", taxonomy.Task1BarChart, taxonomy.ConfidenceHigh},
		{"The line graph below shows rainfall.", taxonomy.Task1LineGraph, taxonomy.ConfidenceHigh},
		{"The pie charts below show energy use.", taxonomy.Task1PieChart, taxonomy.ConfidenceHigh},
		{"The table below shows visitor numbers.", taxonomy.Task1Table, taxonomy.ConfidenceHigh},
		{"The diagram below shows how bricks are made.", taxonomy.Task1Process, taxonomy.ConfidenceHigh},
		{"The maps below show a village in 1990 and now.", taxonomy.Task1Map, taxonomy.ConfidenceHigh},
		{"The graphs below show two trends.", taxonomy.Task1Mixed, taxonomy.ConfidenceMedium},
		{"Write a letter to your friend inviting them to visit.", taxonomy.Task1InformalLetter, taxonomy.ConfidenceHigh},
		{"Write a letter to the council. Begin your letter: Dear Sir or Madam,", taxonomy.Task1FormalLetter, taxonomy.ConfidenceHigh},
		{"Do the advantages of this outweigh the disadvantages?", taxonomy.Task2AdvDisadv, taxonomy.ConfidenceHigh},
		{"Discuss both views and give your own opinion.", taxonomy.Task2Discussion, taxonomy.ConfidenceHigh},
		{"What problems does this cause and what solutions can you suggest?", taxonomy.Task2ProblemSol, taxonomy.ConfidenceHigh},
		{"To what extent do you agree or disagree?", taxonomy.Task2Opinion, taxonomy.ConfidenceHigh},
		{"Write about the following topic.", taxonomy.Task2Essay, taxonomy.ConfidenceMedium},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			m := ClassifyType(tt.content, taxonomy.SkillWriting)
			assert.Equal(t, tt.want, m.ItemType)
			assert.Equal(t, tt.conf, m.Confidence)
			assert.Equal(t, taxonomy.CategoryWriting, m.Category)
			assert.NotEmpty(t, m.Reason)
		})
	}
}

func TestClassifyType_WritingTokensAreWholeWords(t *testing.T) {
	// "comfortable" and "suitable" contain "table" but are not Task 1 cues.
	m := ClassifyType("Is it suitable for people to feel comfortable at work? Give your opinion.", taxonomy.SkillWriting)
	assert.Equal(t, taxonomy.Task2Opinion, m.ItemType)
}

func TestClassifyType_Speaking(t *testing.T) {
	tests := []struct {
		content string
		want    taxonomy.ItemType
		conf    taxonomy.Confidence
	}{
		{"Part 1: Let's talk about your hometown.", taxonomy.SpeakingPart1, taxonomy.ConfidenceHigh},
		{"Part 2 - describe a book.", taxonomy.SpeakingPart2, taxonomy.ConfidenceHigh},
		{"Part 3 questions about education.", taxonomy.SpeakingPart3, taxonomy.ConfidenceHigh},
		{"Cue card: a memorable journey", taxonomy.SpeakingPart2, taxonomy.ConfidenceHigh},
		{"Talk about your favourite food.", taxonomy.SpeakingPart2, taxonomy.ConfidenceMedium},
	}
	for _, tt := range tests {
		m := ClassifyType(tt.content, taxonomy.SkillSpeaking)
		assert.Equal(t, tt.want, m.ItemType, "content %q", tt.content)
		assert.Equal(t, tt.conf, m.Confidence, "content %q", tt.content)
	}
}

func TestClassifyType_Listening(t *testing.T) {
	tests := []struct {
		content string
		want    taxonomy.ItemType
	}{
		{"Complete the form below.", taxonomy.FormCompletion},
		{"Complete the notes below.", taxonomy.NoteCompletion},
		{"Label the plan below.", taxonomy.MapLabelling},
		{"Choose the correct letter.", taxonomy.MultipleChoice},
		{"What is the price? a) $5 b) $10", taxonomy.MultipleChoice},
		{"Match each speaker with an opinion.", taxonomy.Matching},
		{"Questions 1-5", taxonomy.SentenceCompletion},
	}
	for _, tt := range tests {
		m := ClassifyType(tt.content, taxonomy.SkillListening)
		assert.Equal(t, tt.want, m.ItemType, "content %q", tt.content)
	}
}

func TestClassifyType_ReadingCascade(t *testing.T) {
	tests := []struct {
		content string
		want    taxonomy.ItemType
	}{
		{"Write TRUE, FALSE or NOT GIVEN.", taxonomy.TrueFalseNotGiven},
		{"Write YES, NO or NOT GIVEN.", taxonomy.YesNoNotGiven},
		{"Choose the correct heading from the list of headings.", taxonomy.MatchingHeadings},
		{"Which paragraph contains the following information?", taxonomy.MatchingInformation},
		{"Match each statement with the correct person. List of People", taxonomy.MatchingFeatures},
		{"Complete each sentence with the correct ending, A-F.", taxonomy.MatchingSentenceEndings},
		{"Complete the sentences below.", taxonomy.SentenceCompletion},
		{"Complete the summary below.", taxonomy.SummaryCompletion},
		{"Complete the notes below.", taxonomy.NoteCompletion},
		{"Complete the table below.", taxonomy.TableCompletion},
		{"Complete the flow-chart below.", taxonomy.FlowChartCompletion},
		{"Label the diagram below.", taxonomy.DiagramLabelCompletion},
		{"Answer the questions below.", taxonomy.ShortAnswer},
		{"Choose TWO letters, A-E.", taxonomy.MultipleChoiceMulti},
		{"1. What is X?\nA) foo\nB) bar", taxonomy.MultipleChoice},
		{"Fill in: The river is ____ long.", taxonomy.GeneralCompletion},
		{"Nothing to see here.", taxonomy.MultipleChoice},
	}
	for _, tt := range tests {
		m := ClassifyType(tt.content, taxonomy.SkillReading)
		assert.Equal(t, tt.want, m.ItemType, "content %q", tt.content)
	}
}

func TestClassifyType_ReadingOrderTieBreak(t *testing.T) {
	// Matches both the TFNG and the summary rules; TFNG is earlier.
	m := ClassifyType("Summary: TRUE FALSE NOT GIVEN", taxonomy.SkillReading)
	assert.Equal(t, taxonomy.TrueFalseNotGiven, m.ItemType)

	// Matches headings and MCQ; headings is earlier.
	m = ClassifyType("List of Headings\nA) one\nB) two", taxonomy.SkillReading)
	assert.Equal(t, taxonomy.MatchingHeadings, m.ItemType)
}

func TestClassifyModule(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		skill    taxonomy.Skill
		itemType taxonomy.ItemType
		want     taxonomy.Module
	}{
		{"letter is general training", "", taxonomy.SkillWriting, taxonomy.Task1FormalLetter, taxonomy.ModuleGeneralTraining},
		{"essay is academic", "general training", taxonomy.SkillWriting, taxonomy.Task2Essay, taxonomy.ModuleAcademic},
		{"reading marker", "IELTS General Training Reading", taxonomy.SkillReading, taxonomy.MultipleChoice, taxonomy.ModuleGeneralTraining},
		{"listening marker", "general test practice", taxonomy.SkillListening, taxonomy.Matching, taxonomy.ModuleGeneralTraining},
		{"reading default", "Academic reading", taxonomy.SkillReading, taxonomy.MultipleChoice, taxonomy.ModuleAcademic},
		{"speaking default", "general training", taxonomy.SkillSpeaking, taxonomy.SpeakingPart1, taxonomy.ModuleAcademic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyModule(tt.content, tt.skill, tt.itemType))
		})
	}
}

func TestClassify_LetterSetsGeneralTraining(t *testing.T) {
	r, err := Classify("You should spend about 20 minutes on this task. Write a letter to your friend.")
	require.NoError(t, err)
	assert.Equal(t, taxonomy.SkillWriting, r.Skill)
	assert.Equal(t, taxonomy.ModuleGeneralTraining, r.Module)
}

func TestRunRules_NoMatch(t *testing.T) {
	rules := []Rule{{
		Name:   "never",
		Match:  func(*Input) bool { return false },
		Decide: fixed(taxonomy.MultipleChoice, taxonomy.ConfidenceHigh, ""),
	}}
	m, ok := RunRules(rules, NewInput("x"))
	assert.False(t, ok)
	assert.Equal(t, TypeMatch{}, m)
}

func TestTypeRules_EndInCatchAll(t *testing.T) {
	for _, s := range taxonomy.AllSkills() {
		rules := TypeRules(s)
		require.NotEmpty(t, rules, "skill %s", s)
		last := rules[len(rules)-1]
		if !last.Match(NewInput("")) {
			t.Errorf("last %s rule %q does not always match", s, last.Name)
		}
	}
}
