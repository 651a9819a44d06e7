// Package scaffold materializes a new ML/data project from the embedded
// templates. The layout lives in templates/manifest.yaml; this package only
// walks that manifest, renders .tmpl sources with the request values, and
// writes the results under <base>/<project name>. The LICENSE text comes from
// a LicenseResolver, called once per generation.
package scaffold
