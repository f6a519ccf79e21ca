package taxonomy

// registry is the package-level item-type table, keyed by item type.
var registry map[ItemType]*ItemTypeInfo

// bySkill indexes item types by the skills that can produce them.
var bySkill map[Skill][]*ItemTypeInfo

func init() {
	registry = make(map[ItemType]*ItemTypeInfo, len(seedItemTypes))
	bySkill = make(map[Skill][]*ItemTypeInfo)
	for i := range seedItemTypes {
		info := &seedItemTypes[i]
		registry[info.Type] = info
		for _, s := range info.Skills {
			bySkill[s] = append(bySkill[s], info)
		}
	}
}

// AllSkills returns the four skills in classification priority order.
func AllSkills() []Skill {
	return []Skill{SkillWriting, SkillSpeaking, SkillListening, SkillReading}
}

// ParseSkill returns the skill whose name matches s, case-sensitively.
func ParseSkill(s string) (Skill, bool) {
	for _, sk := range AllSkills() {
		if string(sk) == s {
			return sk, true
		}
	}
	return "", false
}

// CategoryOf returns the fixed category of t, or "" for unknown types.
func CategoryOf(t ItemType) Category {
	if info := registry[t]; info != nil {
		return info.Category
	}
	return ""
}

// StorageCodeOf returns the persistence code of t, or "" for unknown types.
func StorageCodeOf(t ItemType) StorageCode {
	if info := registry[t]; info != nil {
		return info.Code
	}
	return ""
}

// DefaultModule returns the module assumed for s when nothing in the
// content says otherwise.
func DefaultModule(s Skill) Module {
	if m, ok := defaultModules[s]; ok {
		return m
	}
	return ModuleAcademic
}

// ItemTypesBySkill returns every item type the given skill can produce,
// in table order.
func ItemTypesBySkill(s Skill) []*ItemTypeInfo {
	return bySkill[s]
}

// AllItemTypes returns the whole table in declaration order.
func AllItemTypes() []*ItemTypeInfo {
	result := make([]*ItemTypeInfo, 0, len(seedItemTypes))
	for i := range seedItemTypes {
		result = append(result, &seedItemTypes[i])
	}
	return result
}

// CategoryNode is one category under a skill with the item types
// (topics) it groups.
type CategoryNode struct {
	Category  Category   `json:"category"`
	ItemTypes []ItemType `json:"item_types"`
}

// SkillNode is one skill in the category hierarchy.
type SkillNode struct {
	Skill         Skill          `json:"skill"`
	DefaultModule Module         `json:"default_module"`
	Categories    []CategoryNode `json:"categories"`
}

// Hierarchy returns the skill → category → item type tree. Skills are in
// classification priority order and categories in a fixed display order.
func Hierarchy() []SkillNode {
	var tree []SkillNode
	for _, s := range AllSkills() {
		node := SkillNode{Skill: s, DefaultModule: DefaultModule(s)}
		for _, c := range categoryOrder {
			var types []ItemType
			for _, info := range bySkill[s] {
				if info.Category == c {
					types = append(types, info.Type)
				}
			}
			if len(types) > 0 {
				node.Categories = append(node.Categories, CategoryNode{Category: c, ItemTypes: types})
			}
		}
		tree = append(tree, node)
	}
	return tree
}
