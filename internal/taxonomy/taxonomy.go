package taxonomy

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Taxonomy 技能词表：规范技能ID到其表面变体集合的映射
// 进程启动时构造一次，运行期只读，可被任意数量的Match调用并发使用
type Taxonomy struct {
	skills []skillEntry
}

// skillEntry 单个规范技能及其预编译的变体匹配模式
type skillEntry struct {
	canonical string
	patterns  []*regexp.Regexp
}

// New 从技能数据库构造词表，并为每个变体预编译带词边界的正则
// 变体匹配只做整词匹配，"java"不会命中"javascript"内部
func New(db map[string][]string) (*Taxonomy, error) {
	if len(db) == 0 {
		return nil, fmt.Errorf("技能数据库不能为空")
	}

	// 按规范名排序，保证匹配顺序与结果完全确定
	names := make([]string, 0, len(db))
	for name := range db {
		names = append(names, name)
	}
	sort.Strings(names)

	t := &Taxonomy{skills: make([]skillEntry, 0, len(db))}
	for _, name := range names {
		variants := db[name]
		if len(variants) == 0 {
			return nil, fmt.Errorf("技能 %q 没有任何变体", name)
		}
		entry := skillEntry{canonical: name, patterns: make([]*regexp.Regexp, 0, len(variants))}
		for _, v := range variants {
			if strings.TrimSpace(v) == "" {
				return nil, fmt.Errorf("技能 %q 包含空变体", name)
			}
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(v)) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("编译技能 %q 的变体 %q 失败: %w", name, v, err)
			}
			entry.patterns = append(entry.patterns, re)
		}
		t.skills = append(t.skills, entry)
	}

	return t, nil
}

// Default 使用内置技能数据库构造词表
// 内置数据库是静态配置，构造失败属于程序错误，直接panic
func Default() *Taxonomy {
	t, err := New(DefaultSkillDatabase())
	if err != nil {
		panic(fmt.Sprintf("内置技能数据库非法: %v", err))
	}
	return t
}

// FindSkills 扫描文本，返回命中的规范技能ID集合
// 匹配不区分大小写；每个技能第一个命中的变体即短路，不会重复上报
func (t *Taxonomy) FindSkills(text string) map[string]struct{} {
	lower := strings.ToLower(text)
	found := make(map[string]struct{})
	for _, entry := range t.skills {
		for _, re := range entry.patterns {
			if re.MatchString(lower) {
				found[entry.canonical] = struct{}{}
				break
			}
		}
	}
	return found
}

// Size 返回词表中的规范技能数量
func (t *Taxonomy) Size() int {
	return len(t.skills)
}
