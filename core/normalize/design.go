package normalize

import (
	"fmt"

	"github.com/canvasmith/canvasmith/core/schema"
)

// DesignSpec normalizes a decoded payload into a schema.DesignSpec. Screens
// are capped at schema.MaxScreens (first N kept, in order), missing device
// dimensions come from the device kind, and unknown block types degrade to
// paragraphs so a garbled block still renders.
func DesignSpec(decoded any) schema.DesignSpec {
	obj := asObject(decoded)
	n := noticeFrom(obj)

	rawScreens := arr(obj, "screens")
	screens := make([]schema.Screen, 0, len(rawScreens))
	for i, entry := range rawScreens {
		screens = append(screens, normalizeScreen(asObject(entry), i))
	}
	if len(screens) == 0 {
		screens = append(screens, normalizeScreen(nil, 0))
	}
	screens = capped(screens, schema.MaxScreens, "screens", &n)

	return schema.DesignSpec{
		Type:             "designSpec",
		Version:          "v1",
		Title:            trimmedStr(obj, "title", "Untitled design"),
		Fidelity:         enum(obj, "fidelity", schema.Fidelities, "medium"),
		Screens:          screens,
		TruncationNotice: n.text,
	}
}

func normalizeScreen(screen map[string]any, index int) schema.Screen {
	device := enum(screen, "device", schema.DeviceKinds, "mobile")
	defWidth, defHeight := schema.DeviceSize(device)

	width := num(screen, "width", defWidth)
	height := num(screen, "height", defHeight)
	if width <= 0 {
		width = defWidth
	}
	if height <= 0 {
		height = defHeight
	}

	rawBlocks := arr(screen, "blocks")
	blocks := make([]schema.Block, 0, len(rawBlocks))
	for _, entry := range rawBlocks {
		if block := asObject(entry); block != nil {
			blocks = append(blocks, normalizeBlock(block))
		}
	}

	return schema.Screen{
		Name:   trimmedStr(screen, "name", fmt.Sprintf("Screen %d", index+1)),
		Device: device,
		Width:  width,
		Height: height,
		Blocks: blocks,
	}
}

func normalizeBlock(block map[string]any) schema.Block {
	switch str(block, "type", "") {
	case "heading":
		level := int(num(block, "level", 1))
		if level < 1 || level > 6 {
			level = 1
		}
		return schema.Block{Type: "heading", Text: str(block, "text", ""), Level: level}
	case "button":
		return schema.Block{
			Type:    "button",
			Label:   str(block, "label", ""),
			Variant: enum(block, "variant", schema.ButtonVariants, "primary"),
		}
	case "image":
		return schema.Block{Type: "image", Alt: str(block, "alt", "")}
	case "input":
		return schema.Block{
			Type:        "input",
			Label:       str(block, "label", ""),
			Placeholder: str(block, "placeholder", ""),
		}
	case "paragraph":
		return schema.Block{Type: "paragraph", Text: str(block, "text", "")}
	default:
		// Unknown block types carry whatever text they had into a paragraph.
		text := str(block, "text", "")
		if text == "" {
			text = str(block, "label", "")
		}
		return schema.Block{Type: "paragraph", Text: text}
	}
}
