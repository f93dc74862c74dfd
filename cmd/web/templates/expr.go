package templates

import (
	"fmt"
	"net/url"
)

// ValueSignal carries the raw input of a single control edit. The underscore
// prefix keeps it out of the default signal set, so every action includes it
// explicitly.
const ValueSignal = "_value"

const postValue = "{filterSignals:{include:/^_value$/}}"

func apiBase(workspaceID string) string {
	return "/api/studio/" + url.PathEscape(workspaceID)
}

// FieldActionURL is the endpoint for one section panel control.
func FieldActionURL(workspaceID, panelName, key string) string {
	return fmt.Sprintf("%s/panels/%s/fields/%s", apiBase(workspaceID), url.PathEscape(panelName), url.PathEscape(key))
}

// GroupResetURL is the endpoint for a group's reset button.
func GroupResetURL(workspaceID, panelName, group string) string {
	return fmt.Sprintf("%s/panels/%s/groups/%s/reset", apiBase(workspaceID), url.PathEscape(panelName), url.PathEscape(group))
}

// PanelResetURL is the endpoint for a panel's reset-all button.
func PanelResetURL(workspaceID, panelName string) string {
	return fmt.Sprintf("%s/panels/%s/reset", apiBase(workspaceID), url.PathEscape(panelName))
}

// OverlayAddURL is the endpoint for one add-overlay button.
func OverlayAddURL(workspaceID, kind string) string {
	return fmt.Sprintf("%s/overlays/add/%s", apiBase(workspaceID), url.PathEscape(kind))
}

// OverlayFieldURL is the endpoint for one overlay item control.
func OverlayFieldURL(workspaceID, itemID, key string) string {
	return fmt.Sprintf("%s/overlays/%s/fields/%s", apiBase(workspaceID), url.PathEscape(itemID), url.PathEscape(key))
}

// OverlayItemURL addresses one overlay item.
func OverlayItemURL(workspaceID, itemID string) string {
	return fmt.Sprintf("%s/overlays/%s", apiBase(workspaceID), url.PathEscape(itemID))
}

// OverlayResetURL is the endpoint for clearing the overlay list.
func OverlayResetURL(workspaceID string) string {
	return apiBase(workspaceID) + "/overlays/reset"
}

// PreviewStreamURL is the descriptor preview SSE endpoint.
func PreviewStreamURL(workspaceID string) string {
	return apiBase(workspaceID) + "/preview/stream"
}

// DescriptorDownloadURL exports the descriptor as a JSON attachment.
func DescriptorDownloadURL(workspaceID string) string {
	return apiBase(workspaceID) + "/descriptor?download=1"
}

// ValueExpr returns the expression for text-like input changes.
func ValueExpr(actionURL string) string {
	return fmt.Sprintf("$_value=evt.target.value; @post('%s',%s)", actionURL, postValue)
}

// CheckedExpr returns the expression for checkbox changes.
func CheckedExpr(actionURL string) string {
	return fmt.Sprintf("$_value=evt.target.checked; @post('%s',%s)", actionURL, postValue)
}

// PostExpr returns a plain POST without signals.
func PostExpr(actionURL string) string {
	return fmt.Sprintf("@post('%s',{filterSignals:{include:/^$/}})", actionURL)
}

// DeleteExpr returns a DELETE without signals.
func DeleteExpr(actionURL string) string {
	return fmt.Sprintf("@delete('%s',{filterSignals:{include:/^$/}})", actionURL)
}

// SliderReadoutExpr updates the readout next to a slider while it is
// dragged; the edit itself is posted on change.
func SliderReadoutExpr(decimals int) string {
	return fmt.Sprintf("el.nextElementSibling.textContent=Number(el.value).toFixed(%d)", decimals)
}
