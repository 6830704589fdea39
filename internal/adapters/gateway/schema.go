package gateway

import "google.golang.org/genai"

// Схемы ответа повторяют формат вывода поле в поле: модель обязана вернуть
// ровно такой JSON для активного режима.

func str() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func nullableStr() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Nullable: genai.Ptr(true)}
}

func boolean() *genai.Schema {
	return &genai.Schema{Type: genai.TypeBoolean}
}

func number() *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber}
}

func arr(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

func obj(props map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props}
}

// reportSchema описывает вывод режима REPORT_GENERATION.
func reportSchema() *genai.Schema {
	importantItem := obj(map[string]*genai.Schema{
		"rss_item_id": str(),
		"headline":    str(),
		"key_point":   str(),
		"sentiment":   str(),
		"action_item": nullableStr(),
		"source_name": str(),
		"source_url":  str(),
	})
	section := obj(map[string]*genai.Schema{
		"id":              str(),
		"title":           str(),
		"summary":         str(),
		"body_markdown":   str(),
		"important_items": arr(importantItem),
	})
	source := obj(map[string]*genai.Schema{
		"rss_item_id":  str(),
		"source_name":  str(),
		"source_url":   str(),
		"title":        str(),
		"published_at": str(),
	})
	return obj(map[string]*genai.Schema{
		"mode": str(),
		"report_metadata": obj(map[string]*genai.Schema{
			"title":          str(),
			"subtitle":       str(),
			"report_id_hint": str(),
			"time_window": obj(map[string]*genai.Schema{
				"start": str(),
				"end":   str(),
			}),
		}),
		"embedding": obj(map[string]*genai.Schema{
			"embedding_summary": str(),
			"embedding_tags":    arr(str()),
		}),
		"sections": arr(section),
		"sources":  arr(source),
		"channels": obj(map[string]*genai.Schema{
			"email": obj(map[string]*genai.Schema{
				"enabled":   boolean(),
				"subject":   str(),
				"body_html": str(),
				"body_text": str(),
			}),
			"sms": obj(map[string]*genai.Schema{
				"enabled":      boolean(),
				"summary_text": str(),
			}),
			"video_reel": obj(map[string]*genai.Schema{
				"enabled":             boolean(),
				"script":              str(),
				"approx_duration_sec": number(),
			}),
		}),
	})
}

// chatSchema описывает вывод режима CHAT_RAG.
func chatSchema() *genai.Schema {
	referencedReport := obj(map[string]*genai.Schema{
		"report_id": str(),
		"title":     str(),
		"timestamp": str(),
	})
	referencedSource := obj(map[string]*genai.Schema{
		"source_type":   str(),
		"source_id":     str(),
		"source_name":   str(),
		"source_url":    nullableStr(),
		"justification": str(),
	})
	return obj(map[string]*genai.Schema{
		"mode":                     str(),
		"assistant_reply_markdown": str(),
		"referenced_reports":       arr(referencedReport),
		"referenced_sources":       arr(referencedSource),
		"suggested_profile_updates": obj(map[string]*genai.Schema{
			"should_update":        boolean(),
			"new_primary_topics":   arr(str()),
			"new_secondary_topics": arr(str()),
			"notes":                str(),
		}),
	})
}
