// Package docs carries the static documentation sections of the NarratoAI
// walkthrough. The texts are process-wide constants with no lifecycle or
// logic of their own; ordering is the fixed display order of the guide.
package docs

// Section is one titled block of walkthrough documentation.
type Section struct {
	Title string
	Body  string
}

// Sections returns the documentation sections in display order. The slice is
// rebuilt on each call so callers can't mutate the canonical order.
func Sections() []Section {
	return []Section{
		{Title: "Complete Video Processing Workflow", Body: workflow},
		{Title: "Docker Usage Examples", Body: dockerUsage},
		{Title: "Configuration Options", Body: configOptions},
		{Title: "Python API Examples", Body: pythonAPI},
		{Title: "Supported Features", Body: features},
		{Title: "Storage and Requirements", Body: storage},
		{Title: "Quick Start Guide", Body: quickStart},
	}
}

// Summary is the closing section printed after the documentation blocks.
const Summary = `
1. SETUP
   - Install Docker and FFmpeg
   - Clone the repository
   - Configure API keys in config.toml

2. DEPLOY
   - Build: docker build -t narratoai:latest .
   - Run: docker-compose up -d

3. USE
   - Access http://localhost:11170
   - Upload video and configure settings
   - Generate processed video

For more information, visit: https://github.com/linyqh/NarratoAI
`

const workflow = `
NarratoAI automates the following workflow:

1. VIDEO INPUT
   ├── Upload your video file (MP4, MOV, AVI, etc.)
   └── System extracts audio and analyzes content

2. SCRIPT GENERATION
   ├── Analyze video content using AI
   ├── Generate narration script
   └── Optionally: Use custom script

3. SUBTITLE PROCESSING
   ├── Speech-to-text (STT) for existing audio
   └── Generate synchronized subtitles

4. NARRATION (TTS)
   ├── Choose voice style
   ├── Generate synthetic narration
   └── Match timing with video

5. VIDEO SYNTHESIS
   ├── Combine original video with narration
   ├── Add subtitles overlay
   └── Export final video

6. OUTPUT
   └── Download processed video with subtitles
`

const dockerUsage = `
# Build the Docker image
cd NarratoAI
docker build -t narratoai:latest .

# Start container with docker-compose
docker-compose up -d

# Or start manually with volume mounts
docker run -d \
    --name narratoai \
    -p 11170:8501 \
    -v $(pwd)/storage:/NarratoAI/storage:rw \
    -v $(pwd)/config.toml:/NarratoAI/config.toml:rw \
    -v $(pwd)/resource:/NarratoAI/resource:rw \
    narratoai:latest

# View logs
docker logs -f narratoai

# Access the web UI
open http://localhost:11170

# Stop the container
docker-compose down
or
docker stop narratoai

# View health status
curl http://localhost:11170/_stcore/health
`

const configOptions = `
Key configuration settings in config.toml:

[llm]
# LLM provider configuration
provider = "openai"  # openai, anthropic, azure, ollama
api_key = "your-api-key"
model = "gpt-4o"

[stt]
# Speech-to-text settings
provider = "whisper"
model = "large-v3"
language = "zh"

[tts]
# Text-to-speech settings
provider = "edge"
voice = "zh-CN-XiaoxiaoNeural"

[video]
# Video processing settings
output_format = "mp4"
video_quality = "high"
add_subtitles = true
`

const pythonAPI = `
# Example: Using NarratoAI programmatically

import os
import sys
sys.path.insert(0, os.path.dirname(__file__))

from app.services import task as tm
from app.models.schema import VideoClipParams, VideoAspect
from app.config import config

# Configure the task
params = VideoClipParams(
    video_path="path/to/video.mp4",
    script="Your narration script here",
    voice_style="zh-CN-XiaoxiaoNeural",
    subtitle_language="zh",
    aspect=VideoAspect.portrait
)

# Start the task
task_id = tm.start_subclip_unified(task_id="my-task", params=params)

# Monitor progress
from app.services import state as sm
task = sm.state.get_task(task_id)
print(f"Progress: {task.get('progress', 0)}%")
`

const features = `
✅ VIDEO PROCESSING
   - Multiple format support (MP4, MOV, AVI, etc.)
   - Audio extraction and processing
   - Hardware acceleration support (FFmpeg)

✅ SCRIPT GENERATION
   - AI-powered script generation
   - Custom script input
   - Script editing and refinement

✅ SPEECH RECOGNITION (STT)
   - Whisper-based recognition
   - Multi-language support
   - Speaker diarization

✅ SYNTHETIC NARRATION (TTS)
   - Multiple voice styles
   - Speed and pitch control
   - Voice cloning support

✅ SUBTITLE SUPPORT
   - SRT format
   - Custom styling
   - Position adjustment

✅ OUTPUT OPTIONS
   - Multiple video formats
   - Subtitle embedding
   - Separate subtitle files
`

const storage = `
Directory Structure:
/storage
├── temp/          # Temporary files during processing
├── tasks/         # Task metadata and progress
├── json/          # JSON outputs (scripts, metadata)
├── narration_scripts/  # Generated narration scripts
└── drama_analysis/     # Video analysis results

Disk Space:
- Minimum: 10GB for models
- Recommended: 50GB+
- For heavy usage: 100GB+

RAM:
- Minimum: 8GB
- Recommended: 16GB+
- With GPU: 8GB (GPU memory offloads CPU)
`

const quickStart = `
1. PREREQUISITES
   ✓ Docker installed
   ✓ FFmpeg installed
   ✓ 50GB+ free disk space
   ✓ 16GB+ RAM recommended

2. INITIAL SETUP
   git clone https://github.com/linyqh/NarratoAI.git
   cd NarratoAI
   cp config.example.toml config.toml
   # Edit config.toml with your API keys

3. BUILD AND RUN
   docker build -t narratoai:latest .
   docker-compose up -d

4. FIRST USE
   Open http://localhost:11170
   Upload a video file
   Configure settings
   Click "Generate Video"

5. MONITORING
   docker logs -f narratoai
   Check http://localhost:11170 for progress
`
