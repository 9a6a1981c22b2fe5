package entity

// MarkupPlaceholder is the text inserted between the start and end tags of a rich-text tool.
const MarkupPlaceholder = "テキスト"

// NoticeMarkupToolLimit is how many of the rich-text tools notices may use.
const NoticeMarkupToolLimit = 8

// MarkupTool wraps a placeholder in one of the site's rich-text styles.
type MarkupTool struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	TagStart string `json:"tagStart"`
	TagEnd   string `json:"tagEnd"`
}

// Snippet returns the markup appended to a content field.
func (t MarkupTool) Snippet() string {
	return t.TagStart + MarkupPlaceholder + t.TagEnd
}

// MarkupTools lists the rich-text tools in toolbar order.
var MarkupTools = []MarkupTool{
	{Key: "rt-h1-style", Label: "大見出し", TagStart: `<div class="rt-h1-style">`, TagEnd: `</div>`},
	{Key: "rt-h2-style", Label: "中見出し", TagStart: `<div class="rt-h2-style">`, TagEnd: `</div>`},
	{Key: "rt-text-lg", Label: "強調大", TagStart: `<span class="rt-text-lg">`, TagEnd: `</span>`},
	{Key: "rt-text-red", Label: "赤字", TagStart: `<span class="rt-text-red">`, TagEnd: `</span>`},
	{Key: "rt-text-blue", Label: "青字", TagStart: `<span class="rt-text-blue">`, TagEnd: `</span>`},
	{Key: "rt-marker-yellow", Label: "黄マーカー", TagStart: `<span class="rt-marker-yellow">`, TagEnd: `</span>`},
	{Key: "rt-marker-pink", Label: "桃マーカー", TagStart: `<span class="rt-marker-pink">`, TagEnd: `</span>`},
	{Key: "rt-box-info", Label: "情報BOX", TagStart: `<div class="rt-box-info">`, TagEnd: `</div>`},
	{Key: "rt-box-warning", Label: "警告BOX", TagStart: `<div class="rt-box-warning">`, TagEnd: `</div>`},
	{Key: "rt-box-quote", Label: "引用", TagStart: `<div class="rt-box-quote">`, TagEnd: `</div>`},
}

// MarkupToolsFor returns the tools available when editing the collection.
func MarkupToolsFor(collection Collection) []MarkupTool {
	if collection == CollectionNotices {
		return MarkupTools[:NoticeMarkupToolLimit]
	}

	return MarkupTools
}

// FindMarkupTool looks up a tool by key among those available to the collection.
func FindMarkupTool(collection Collection, key string) (MarkupTool, bool) {
	for _, tool := range MarkupToolsFor(collection) {
		if tool.Key == key {
			return tool, true
		}
	}

	return MarkupTool{}, false
}
