// Package ocr reads the printed label next to a fabric swatch using the
// Tesseract OCR engine (via gosseract/v2) and maps the recognized name to a
// color family.
//
// # Prerequisites
//
// Tesseract and its language data must be installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-por
//   - macOS: brew install tesseract tesseract-lang
//
// Labels in the catalog are Portuguese, so the default language is "por".
// Any installed Tesseract language code, or a "+"-joined list such as
// "por+eng", may be passed instead.
//
// # Preprocessing
//
// Swatch labels are often small and printed on tinted card. Before OCR the
// label region is cropped, converted to grayscale, contrast-stretched and
// upscaled so that text is at least MinTextHeight pixels tall. Word boxes are
// mapped back to the coordinates of the original image.
//
// # Error Handling
//
// ReadLabel fails when the region is empty or outside the image, when the
// language is not installed, or when Tesseract itself fails. An unreadable
// label is not an error: the result simply has empty Text and no family.
package ocr
