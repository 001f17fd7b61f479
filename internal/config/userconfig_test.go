package config

import "testing"

func resetGlobals() {
	ThemeName = ""
	PreviewOpacity = DefaultPreviewOpacity
	ReorderEnabled = true
	HideMediaBar = false
	MediaRepeat = false
	ListHeight = DefaultListHeight
}

func TestFillMissingDefaults(t *testing.T) {
	cfg := &UserConfig{}
	fillMissing(cfg)
	if cfg.Appearance.ListHeight != DefaultListHeight {
		t.Errorf("ListHeight = %d, want %d", cfg.Appearance.ListHeight, DefaultListHeight)
	}
	if cfg.Reorder.PreviewOpacity != DefaultPreviewOpacity {
		t.Errorf("PreviewOpacity = %v, want %v", cfg.Reorder.PreviewOpacity, DefaultPreviewOpacity)
	}
}

func TestFillMissingClamps(t *testing.T) {
	cfg := &UserConfig{}
	cfg.Appearance.ListHeight = 1
	cfg.Reorder.PreviewOpacity = 3
	fillMissing(cfg)
	if cfg.Appearance.ListHeight != 3 {
		t.Errorf("ListHeight = %d, want clamp at 3", cfg.Appearance.ListHeight)
	}
	if cfg.Reorder.PreviewOpacity != 1 {
		t.Errorf("PreviewOpacity = %v, want clamp at 1", cfg.Reorder.PreviewOpacity)
	}

	cfg.Appearance.ListHeight = 9999
	fillMissing(cfg)
	if cfg.Appearance.ListHeight != 200 {
		t.Errorf("ListHeight = %d, want clamp at 200", cfg.Appearance.ListHeight)
	}
}

func TestApplyOverridesFlagPrecedence(t *testing.T) {
	defer resetGlobals()
	resetGlobals()

	enabled := true
	userCfg := DefaultConfig()
	userCfg.Reorder.Enabled = &enabled
	userCfg.Reorder.PreviewOpacity = 0.5
	userCfg.Appearance.ListHeight = 20

	ApplyOverrides(Overrides{PreviewOpacity: 0.9, NoReorder: true, ListHeight: 30}, userCfg)

	if PreviewOpacity != 0.9 {
		t.Errorf("PreviewOpacity = %v, flag should win over config", PreviewOpacity)
	}
	if ReorderEnabled {
		t.Error("NoReorder flag should disable reorder despite config")
	}
	if ListHeight != 30 {
		t.Errorf("ListHeight = %d, flag should win over config", ListHeight)
	}
}

func TestApplyOverridesFallsBackToConfig(t *testing.T) {
	defer resetGlobals()
	resetGlobals()

	disabled := false
	userCfg := DefaultConfig()
	userCfg.Reorder.Enabled = &disabled
	userCfg.Reorder.PreviewOpacity = 0.5
	userCfg.Media.HideBar = true

	ApplyOverrides(Overrides{}, userCfg)

	if PreviewOpacity != 0.5 {
		t.Errorf("PreviewOpacity = %v, want config value 0.5", PreviewOpacity)
	}
	if ReorderEnabled {
		t.Error("config enabled=false should disable reorder")
	}
	if !HideMediaBar {
		t.Error("config hide_bar should hide the media bar")
	}
}

func TestApplyOverridesMediaRepeat(t *testing.T) {
	defer resetGlobals()
	resetGlobals()

	userCfg := DefaultConfig()
	userCfg.Media.Repeat = true
	ApplyOverrides(Overrides{}, userCfg)
	if !MediaRepeat {
		t.Error("config repeat=true should enable playback repeat")
	}

	userCfg.Media.Repeat = false
	ApplyOverrides(Overrides{}, userCfg)
	if MediaRepeat {
		t.Error("config repeat=false should disable playback repeat")
	}
}

func TestApplyOverridesNilConfig(t *testing.T) {
	defer resetGlobals()
	resetGlobals()

	ApplyOverrides(Overrides{HideMediaBar: true}, nil)
	if !HideMediaBar {
		t.Error("flag should apply without user config")
	}
	if PreviewOpacity != DefaultPreviewOpacity {
		t.Errorf("PreviewOpacity = %v, want default", PreviewOpacity)
	}
}
