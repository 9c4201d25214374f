package validate

import "github.com/canvasmith/canvasmith/core/schema"

// validateDesignSpec checks a designSpec/v1 payload: a fidelity level and one
// to MaxScreens device-sized screens of typed blocks.
func validateDesignSpec(res *Result, obj map[string]any) {
	warnUnknownKeys(res, obj, "type", "version", "title", "fidelity", "screens")

	checkEnum(res, obj, "", "fidelity", schema.Fidelities)

	screens, ok := arrayField(obj, "screens")
	if !ok {
		res.errorf("screens is missing or invalid")
		return
	}
	if len(screens) == 0 {
		res.errorf("screens must contain at least one screen")
	}
	warnCeiling(res, "screens", len(screens), schema.MaxScreens)

	for i, raw := range screens {
		screen, ok := raw.(map[string]any)
		if !ok {
			res.errorf("screens[%d] must be an object", i)
			continue
		}
		validateScreen(res, screen, indexedPath("screens", i))
	}
}

func validateScreen(res *Result, screen map[string]any, path string) {
	checkEnum(res, screen, path, "device", schema.DeviceKinds)

	for _, dim := range []string{"width", "height"} {
		if raw, present := screen[dim]; present {
			if n, ok := raw.(float64); !ok || n <= 0 {
				res.warnf("%s is not a positive number and will be defaulted from the device kind", joinPath(path, dim))
			}
		}
	}

	blocks, present := screen["blocks"]
	if !present {
		return
	}
	arr, ok := blocks.([]any)
	if !ok {
		res.errorf("%s.blocks must be an array", path)
		return
	}
	for i, raw := range arr {
		block, ok := raw.(map[string]any)
		if !ok {
			res.errorf("%s.blocks[%d] must be an object", path, i)
			continue
		}
		validateBlock(res, block, joinPath(path, indexedPath("blocks", i)))
	}
}

func validateBlock(res *Result, block map[string]any, path string) {
	typ, ok := stringField(block, "type")
	if !ok {
		res.errorf("%s.type is missing or invalid", path)
		return
	}

	switch typ {
	case "heading":
		requireString(res, block, path, "text")
		if raw, present := block["level"]; present {
			if n, ok := raw.(float64); !ok || n < 1 || n > 6 || n != float64(int(n)) {
				res.errorf("%s.level must be an integer between 1 and 6", path)
			}
		}
	case "paragraph":
		requireString(res, block, path, "text")
	case "button":
		requireString(res, block, path, "label")
		checkEnum(res, block, path, "variant", schema.ButtonVariants)
	case "image", "input":
		// All fields optional; defaults fill them in.
	default:
		res.warnf("%s.type %q is not a known block type and will render as a paragraph", path, typ)
	}
}
