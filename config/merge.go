package config

// mergeConfigs merges override configuration into base
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}

	result.Grid = mergeGrid(result.Grid, override.Grid)
	preset := base.Keybindings.Preset
	if override.Keybindings.Preset != "" {
		preset = override.Keybindings.Preset
	}
	result.Keybindings = KeybindingsConfig{
		Preset:     preset,
		Navigation: mergeSection(base.Keybindings.Navigation, override.Keybindings.Navigation),
		Actions:    mergeSection(base.Keybindings.Actions, override.Keybindings.Actions),
		System:     mergeSection(base.Keybindings.System, override.Keybindings.System),
	}

	// Merge extensions
	if override.Extensions != nil {
		merged := make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for key, value := range base.Extensions {
			merged[key] = value
		}
		for key, value := range override.Extensions {
			// If both base and override have the same extension key, merge them
			if baseMap, ok := merged[key].(map[string]interface{}); ok {
				if overrideMap, ok := value.(map[string]interface{}); ok {
					mergedMap := make(map[string]interface{})
					for k, v := range baseMap {
						mergedMap[k] = v
					}
					for k, v := range overrideMap {
						mergedMap[k] = v
					}
					merged[key] = mergedMap
					continue
				}
			}
			merged[key] = value
		}
		result.Extensions = merged
	}

	return &result
}

func mergeGrid(base, override GridConfig) GridConfig {
	result := base

	if override.PerRow != 0 {
		result.PerRow = override.PerRow
	}
	if override.RequiredRows != 0 {
		result.RequiredRows = override.RequiredRows
	}
	if override.StartIndex != 0 {
		result.StartIndex = override.StartIndex
	}
	if override.IndexField != "" {
		result.IndexField = override.IndexField
	}
	if override.LabelField != "" {
		result.LabelField = override.LabelField
	}
	if override.BlankTemplate != nil {
		result.BlankTemplate = override.BlankTemplate
	}
	if override.KeepOverflowColumn {
		result.KeepOverflowColumn = true
	}
	if override.CellWidth != 0 {
		result.CellWidth = override.CellWidth
	}
	if override.ScrollBehavior != "" {
		result.ScrollBehavior = override.ScrollBehavior
	}

	return result
}

func mergeSection(base, override KeybindingSectionConfig) KeybindingSectionConfig {
	if len(override) == 0 {
		return base
	}
	out := make(KeybindingSectionConfig, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
