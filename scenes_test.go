package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testScript = `from manim import *


class NeuralNetworkScene(Scene):
    def construct(self):
        pass


class HelloManimTest(Scene):
    def construct(self):
        pass


class CameraPan(MovingCameraScene):
    def construct(self):
        pass


class LayerSpec(object):
    pass


class Bare:
    pass


def not_a_class(Scene):
    pass
`

func TestListScenes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes.py")
	writeFile(t, path, testScript)

	scenes, err := listScenes(path)
	require.NoError(t, err)
	require.Equal(t, []string{"NeuralNetworkScene", "HelloManimTest", "CameraPan"}, scenes)
}

func TestListScenesMissingScript(t *testing.T) {
	_, err := listScenes(filepath.Join(t.TempDir(), "gone.py"))
	require.Error(t, err)
}

func TestPrintScenes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes.py")
	writeFile(t, path, testScript)

	var buf bytes.Buffer
	require.NoError(t, printScenes(&buf, path))
	require.Contains(t, buf.String(), "Scenes in "+path)
	require.Contains(t, buf.String(), "  NeuralNetworkScene\n")
	require.Contains(t, buf.String(), "  CameraPan\n")
	require.NotContains(t, buf.String(), "LayerSpec")
}

func TestPrintScenesEmptyScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.py")
	writeFile(t, path, "import numpy as np\n")

	var buf bytes.Buffer
	require.NoError(t, printScenes(&buf, path))
	require.Contains(t, buf.String(), "No scenes found")
}
